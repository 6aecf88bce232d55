// ABOUTME: Persisted session store for token, theme flag and session snapshot
// ABOUTME: Keeps a single JSON document in the config dir, accessed through afero

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/spf13/afero"
)

// FileName is the state document inside the config dir
const FileName = "state.json"

// Theme values as persisted
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// state is the on-disk document. Keys match what the web console used.
type state struct {
	Token   string          `json:"token,omitempty"`
	Theme   string          `json:"theme,omitempty"`
	Session *models.Session `json:"admin_auth,omitempty"`
}

// Store holds the three durable values. Setters persist immediately.
type Store struct {
	fs  afero.Fs
	dir string

	mu    sync.RWMutex
	state state
}

// New creates a store rooted at dir. Call Load to read existing state.
func New(fsys afero.Fs, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

// Open creates a store on the OS filesystem and loads it
func Open(dir string) (*Store, error) {
	s := New(afero.NewOsFs(), dir)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, FileName)
}

// Load reads state from disk. A missing or corrupt file yields empty state.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path())
	if errors.Is(err, fs.ErrNotExist) {
		s.state = state{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path(), err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Warn("Ignoring corrupt state file", "path", s.path(), "error", err)
		s.state = state{}
		return nil
	}
	if st.Session != nil && !st.Session.Valid() {
		slog.Warn("Ignoring inconsistent session snapshot", "path", s.path())
		st.Session = nil
	}
	s.state = st
	return nil
}

// Save writes state to disk atomically
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path(), err)
	}
	return nil
}

func (s *Store) update(fn func(*state)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	return s.saveLocked()
}

// Token returns the stored auth token, or "" if none
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// SetToken stores the auth token
func (s *Store) SetToken(token string) error {
	return s.update(func(st *state) { st.Token = token })
}

// ClearToken removes the auth token
func (s *Store) ClearToken() error {
	return s.SetToken("")
}

// DarkMode reports whether the dark theme is selected
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme == ThemeDark
}

// SetDarkMode persists the theme flag
func (s *Store) SetDarkMode(dark bool) error {
	theme := ThemeLight
	if dark {
		theme = ThemeDark
	}
	return s.update(func(st *state) { st.Theme = theme })
}

// Session returns the cached session snapshot (logged out if none)
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Session == nil {
		return models.Session{}
	}
	snapshot := *s.state.Session
	if snapshot.User != nil {
		u := *snapshot.User
		snapshot.User = &u
	}
	return snapshot
}

// SetSession persists the session snapshot
func (s *Store) SetSession(session models.Session) error {
	if !session.Valid() {
		return fmt.Errorf("invalid session: isLoggedIn=%t with user=%t", session.IsLoggedIn, session.User != nil)
	}
	return s.update(func(st *state) { st.Session = &session })
}

// ClearSession stores the logged-out snapshot
func (s *Store) ClearSession() error {
	return s.SetSession(models.Session{})
}
