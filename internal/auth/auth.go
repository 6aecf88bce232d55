// ABOUTME: Auth session manager driving sign-in, sign-out and profile lookup
// ABOUTME: Owns the token lifecycle and the persisted session snapshot

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
)

// Profile fallbacks used when the service does not describe the operator
const (
	DefaultName = "Admin User"
	DefaultRole = "Super Administrator"
	avatarURL   = "https://picsum.photos/seed/%s/200"
)

// API is the subset of the HTTP client the manager needs
type API interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// SessionStore persists the token and the session snapshot
type SessionStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
	Session() models.Session
	SetSession(session models.Session) error
	ClearSession() error
}

// State is the sign-in lifecycle
type State int

const (
	LoggedOut State = iota
	LoggingIn
	LoggedIn
	LoggingOut
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case LoggingIn:
		return "logging-in"
	case LoggedIn:
		return "logged-in"
	case LoggingOut:
		return "logging-out"
	default:
		return "unknown"
	}
}

// LoginError is returned when the sign-in request fails
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// AuthResponse is the body of sign-in and register responses
type AuthResponse struct {
	Token string          `json:"token,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// remoteProfile is the loose shape the service uses for the operator
type remoteProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// Manager drives the auth lifecycle against the service
type Manager struct {
	api   API
	store SessionStore
	now   func() time.Time

	mu    sync.Mutex
	state State
}

// New creates a manager. A logged-in snapshot resumes the previous session,
// with or without a stored token.
func New(api API, store SessionStore) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		now:   time.Now,
		state: LoggedOut,
	}
	if store.Session().IsLoggedIn {
		m.state = LoggedIn
	}
	return m
}

// State returns the current lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// IsAuthenticated reports whether a token is stored
func (m *Manager) IsAuthenticated() bool {
	return m.store.Token() != ""
}

// CurrentSession returns the persisted session snapshot
func (m *Manager) CurrentSession() models.Session {
	return m.store.Session()
}

// Login signs in and resolves the operator profile. The profile comes from
// the response, then the profile endpoints, then a synthesized default.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Profile, error) {
	m.setState(LoggingIn)

	var resp AuthResponse
	creds := map[string]string{"email": email, "password": password}
	if err := m.api.Do(ctx, http.MethodPost, "/auth/signin", creds, &resp); err != nil {
		m.setState(LoggedOut)
		slog.Warn("Sign-in failed", "email", email, "error", err)
		return models.Profile{}, &LoginError{Message: err.Error(), Err: err}
	}

	if resp.Token != "" {
		if err := m.store.SetToken(resp.Token); err != nil {
			slog.Error("Failed to persist token", "error", err)
		}
	}

	profile, ok := embeddedProfile(resp.User, email)
	if !ok {
		fetched, err := m.Profile(ctx)
		if err != nil {
			slog.Info("Profile unavailable, using default", "error", err)
			profile = DefaultProfile(email)
		} else {
			profile = fetched
		}
	}
	profile = normalize(profile, email)

	if err := m.store.SetSession(models.LoggedIn(profile)); err != nil {
		slog.Error("Failed to persist session", "error", err)
	}
	m.setState(LoggedIn)
	slog.Info("Signed in", "email", profile.Email)
	return profile, nil
}

// Register creates an account. The response is returned as-is.
func (m *Manager) Register(ctx context.Context, payload map[string]any) (*AuthResponse, error) {
	var resp AuthResponse
	if err := m.api.Do(ctx, http.MethodPost, "/auth/register", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the operator profile from /auth/me, falling back to /users/me
func (m *Manager) Profile(ctx context.Context) (models.Profile, error) {
	var primary remoteProfile
	errPrimary := m.api.Do(ctx, http.MethodGet, "/auth/me", nil, &primary)
	if errPrimary == nil {
		return primary.toProfile(), nil
	}

	var fallback remoteProfile
	errFallback := m.api.Do(ctx, http.MethodGet, "/users/me", nil, &fallback)
	if errFallback == nil {
		return fallback.toProfile(), nil
	}

	return models.Profile{}, errors.Join(
		fmt.Errorf("GET /auth/me: %w", errPrimary),
		fmt.Errorf("GET /users/me: %w", errFallback),
	)
}

// Refresh exchanges the current token for a new one
func (m *Manager) Refresh(ctx context.Context) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := m.api.Do(ctx, http.MethodPost, "/auth/refresh", nil, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return errors.New("refresh response carried no token")
	}
	return m.store.SetToken(resp.Token)
}

// Logout tells the service the session is over and clears local state.
// The remote call is best-effort: local cleanup always happens.
func (m *Manager) Logout(ctx context.Context) {
	m.setState(LoggingOut)

	if err := m.api.Do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		slog.Warn("Logout request failed, clearing local session anyway", "error", err)
	}

	if err := m.store.ClearToken(); err != nil {
		slog.Error("Failed to clear token", "error", err)
	}
	if err := m.store.ClearSession(); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	m.setState(LoggedOut)
	slog.Info("Signed out")
}

// DefaultProfile is the profile used when the service provides none
func DefaultProfile(email string) models.Profile {
	return models.Profile{
		Name:   DefaultName,
		Email:  email,
		Role:   DefaultRole,
		Avatar: AvatarURL(email),
	}
}

// AvatarURL returns a placeholder image URL derived from email
func AvatarURL(email string) string {
	return fmt.Sprintf(avatarURL, url.QueryEscape(email))
}

func embeddedProfile(raw json.RawMessage, email string) (models.Profile, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return models.Profile{}, false
	}
	var rp remoteProfile
	if err := json.Unmarshal(raw, &rp); err != nil {
		slog.Warn("Ignoring unreadable user in sign-in response", "error", err)
		return models.Profile{}, false
	}
	return rp.toProfile(), true
}

func (rp remoteProfile) toProfile() models.Profile {
	name := rp.Name
	if name == "" {
		name = rp.Username
	}
	return models.Profile{Name: name, Email: rp.Email, Role: rp.Role, Avatar: rp.Avatar}
}

// normalize fills missing profile fields from the defaults for email
func normalize(p models.Profile, email string) models.Profile {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Email == "" {
		p.Email = email
	}
	if p.Role == "" {
		p.Role = DefaultRole
	}
	if p.Avatar == "" {
		p.Avatar = AvatarURL(email)
	}
	return p
}
