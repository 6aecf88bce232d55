// ABOUTME: Notification sink holding transient toast messages
// ABOUTME: Each toast expires on its own cancellable timer unless dismissed first

package notify

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays visible without dismissal
const DefaultTTL = 3500 * time.Millisecond

const idLength = 8

// Kind classifies a toast
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Toast is one transient message
type Toast struct {
	ID   string
	Text string
	Kind Kind
}

// Timer is a pending removal that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Sink is an ordered queue of toasts. Safe for concurrent use.
type Sink struct {
	ttl       time.Duration
	scheduler Scheduler

	mu       sync.Mutex
	toasts   []Toast
	timers   map[string]Timer
	onChange func()
}

// Option configures a Sink
type Option func(*Sink)

// WithTTL overrides DefaultTTL
func WithTTL(d time.Duration) Option {
	return func(s *Sink) { s.ttl = d }
}

// WithScheduler overrides the wall-clock scheduler
func WithScheduler(sch Scheduler) Option {
	return func(s *Sink) { s.scheduler = sch }
}

// New creates an empty sink
func New(opts ...Option) *Sink {
	s := &Sink{
		ttl:       DefaultTTL,
		scheduler: realScheduler{},
		timers:    make(map[string]Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to be called after every push, dismissal or expiry.
// fn runs without the sink lock held.
func (s *Sink) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Push appends a toast and schedules its expiry. Returns the toast id.
func (s *Sink) Push(text string, kind Kind) string {
	s.mu.Lock()
	id := s.newIDLocked()
	s.toasts = append(s.toasts, Toast{ID: id, Text: text, Kind: kind})
	s.timers[id] = s.scheduler.AfterFunc(s.ttl, func() { s.expire(id) })
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return id
}

// Dismiss removes the toast immediately and cancels its timer.
// Unknown ids are ignored.
func (s *Sink) Dismiss(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
	}
	removed := s.removeLocked(id)
	notify := s.onChange
	s.mu.Unlock()

	if removed && notify != nil {
		notify()
	}
}

// Toasts returns the queue oldest first
func (s *Sink) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of visible toasts
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}

func (s *Sink) expire(id string) {
	s.mu.Lock()
	removed := s.removeLocked(id)
	notify := s.onChange
	s.mu.Unlock()

	if removed && notify != nil {
		notify()
	}
}

func (s *Sink) removeLocked(id string) bool {
	delete(s.timers, id)
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Sink) newIDLocked() string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
		if _, taken := s.timers[id]; !taken {
			return id
		}
	}
}
