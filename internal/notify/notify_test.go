package notify

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler fires timers when simulated time is advanced
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{at: f.now + d, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

func (f *fakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	var due []*fakeTimer
	for _, t := range f.timers {
		if !t.stopped && !t.fired && t.at <= f.now {
			t.fired = true
			due = append(due, t)
		}
	}
	f.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

func newTestSink() (*Sink, *fakeScheduler) {
	sch := &fakeScheduler{}
	return New(WithScheduler(sch)), sch
}

func TestPush_VisibleImmediately(t *testing.T) {
	s, _ := newTestSink()

	id := s.Push("User created successfully", Success)

	toasts := s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, id, toasts[0].ID)
	assert.Equal(t, "User created successfully", toasts[0].Text)
	assert.Equal(t, Success, toasts[0].Kind)
	assert.Len(t, id, idLength)
}

func TestPush_ExpiresAfterTTL(t *testing.T) {
	s, sch := newTestSink()
	s.Push("hello", Info)

	sch.Advance(3499 * time.Millisecond)
	assert.Equal(t, 1, s.Len(), "toast should still be visible before 3.5s")

	sch.Advance(time.Millisecond)
	assert.Equal(t, 0, s.Len(), "toast should be gone after 3.5s")
}

func TestDismiss_RemovesAndCancelsTimer(t *testing.T) {
	s, sch := newTestSink()
	id := s.Push("hello", Error)

	s.Dismiss(id)
	assert.Equal(t, 0, s.Len())
	require.Len(t, sch.timers, 1)
	assert.True(t, sch.timers[0].stopped, "expiry timer should be stopped")

	assert.NotPanics(t, func() { sch.Advance(10 * time.Second) })
	assert.Equal(t, 0, s.Len())
}

func TestDismiss_Idempotent(t *testing.T) {
	s, _ := newTestSink()
	id := s.Push("hello", Info)

	s.Dismiss(id)
	s.Dismiss(id)
	s.Dismiss("missing")

	assert.Equal(t, 0, s.Len())
}

func TestToasts_InsertionOrderAndIndependentExpiry(t *testing.T) {
	s, sch := newTestSink()
	first := s.Push("first", Info)
	sch.Advance(time.Second)
	second := s.Push("second", Success)
	third := s.Push("third", Error)

	toasts := s.Toasts()
	require.Len(t, toasts, 3)
	assert.Equal(t, []string{first, second, third}, []string{toasts[0].ID, toasts[1].ID, toasts[2].ID})

	s.Dismiss(second)
	sch.Advance(2500 * time.Millisecond)
	toasts = s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, third, toasts[0].ID)

	sch.Advance(time.Second)
	assert.Equal(t, 0, s.Len())
}

func TestPush_UniqueIDs(t *testing.T) {
	s, _ := newTestSink()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := s.Push("x", Info)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestOnChange_CalledForPushDismissAndExpiry(t *testing.T) {
	s, sch := newTestSink()
	calls := 0
	s.OnChange(func() {
		calls++
		_ = s.Toasts() // must not deadlock
	})

	id := s.Push("a", Info)
	s.Push("b", Info)
	s.Dismiss(id)
	s.Dismiss(id)
	sch.Advance(DefaultTTL)

	assert.Equal(t, 4, calls)
}

func TestWithTTL(t *testing.T) {
	sch := &fakeScheduler{}
	s := New(WithScheduler(sch), WithTTL(time.Second))
	s.Push("short", Info)

	sch.Advance(time.Second)
	assert.Equal(t, 0, s.Len())
}

func TestRealScheduler_Expires(t *testing.T) {
	s := New(WithTTL(20 * time.Millisecond))
	s.Push("real", Info)

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}
