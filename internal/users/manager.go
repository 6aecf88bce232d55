// ABOUTME: User collection manager owning the in-memory list of user records
// ABOUTME: Calls the users resource and reconciles local state, reporting outcomes as toasts

package users

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/notify"
)

// Toast texts
const (
	MsgLoadFailed    = "Error loading users"
	MsgCreated       = "User created successfully"
	MsgCreateFailed  = "Failed to create user"
	MsgUpdated       = "User updated successfully"
	MsgUpdateFailed  = "Failed to update user"
	MsgDeleted       = "User deleted successfully"
	MsgDeleteFailed  = "Failed to delete user"
	usersPath        = "/users"
	userPathTemplate = "/users/%d"
)

// API is the subset of the HTTP client the manager needs
type API interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Notifier receives operation outcomes
type Notifier interface {
	Push(text string, kind notify.Kind) string
}

// Manager is the single owner of the user collection. Mutations are applied
// when their request completes, so racing calls resolve last-completion-wins.
type Manager struct {
	api      API
	notifier Notifier

	mu          sync.RWMutex
	users       []models.UserRecord
	loading     bool
	lastUpdated time.Time
}

// New creates a manager with an empty collection. The owner is expected to
// call List once after construction.
func New(api API, notifier Notifier) *Manager {
	return &Manager{
		api:      api,
		notifier: notifier,
		users:    []models.UserRecord{},
	}
}

// Users returns a copy of the collection in display order
func (m *Manager) Users() []models.UserRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.UserRecord, len(m.users))
	copy(out, m.users)
	return out
}

// Find returns the local record with the given id
func (m *Manager) Find(id int) (models.UserRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexLocked(id); i >= 0 {
		return m.users[i], true
	}
	return models.UserRecord{}, false
}

// Loading reports whether a List call is in flight
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// LastUpdated returns when the collection was last fetched or mutated
func (m *Manager) LastUpdated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdated
}

// List fetches all users and replaces the collection. On failure the
// collection is left as it was.
func (m *Manager) List(ctx context.Context) bool {
	m.setLoading(true)
	defer m.setLoading(false)

	var fetched []models.UserRecord
	if err := m.api.Do(ctx, http.MethodGet, usersPath, nil, &fetched); err != nil {
		slog.Error("Failed to load users", "error", err)
		m.notifier.Push(MsgLoadFailed, notify.Error)
		return false
	}
	if fetched == nil {
		fetched = []models.UserRecord{}
	}

	m.mu.Lock()
	m.users = fetched
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	slog.Info("Loaded users", "count", len(fetched))
	return true
}

// Get fetches a single user without touching the collection
func (m *Manager) Get(ctx context.Context, id int) (models.UserRecord, error) {
	var u models.UserRecord
	if err := m.api.Do(ctx, http.MethodGet, fmt.Sprintf(userPathTemplate, id), nil, &u); err != nil {
		return models.UserRecord{}, err
	}
	return u, nil
}

// Create posts a new user and prepends it. The service's id is replaced with
// max(local ids)+1 because the backing service does not persist creations.
func (m *Manager) Create(ctx context.Context, partial models.UserPatch) (models.UserRecord, bool) {
	created := partial.Apply(models.UserRecord{})
	if err := m.api.Do(ctx, http.MethodPost, usersPath, partial, &created); err != nil {
		slog.Error("Failed to create user", "error", err)
		m.notifier.Push(MsgCreateFailed, notify.Error)
		return models.UserRecord{}, false
	}

	m.mu.Lock()
	serverID := created.ID
	created.ID = m.nextIDLocked()
	m.users = append([]models.UserRecord{created}, m.users...)
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	slog.Info("Created user", "id", created.ID, "server_id", serverID)
	m.notifier.Push(MsgCreated, notify.Success)
	return created, true
}

// Update puts the partial record and shallow-merges it into the local copy.
// On failure the local record is untouched.
func (m *Manager) Update(ctx context.Context, id int, partial models.UserPatch) bool {
	if err := m.api.Do(ctx, http.MethodPut, fmt.Sprintf(userPathTemplate, id), partial, nil); err != nil {
		slog.Error("Failed to update user", "id", id, "error", err)
		m.notifier.Push(MsgUpdateFailed, notify.Error)
		return false
	}

	m.mu.Lock()
	if i := m.indexLocked(id); i >= 0 {
		m.users[i] = partial.Apply(m.users[i])
	} else {
		slog.Warn("Updated user not in local collection", "id", id)
	}
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	slog.Info("Updated user", "id", id)
	m.notifier.Push(MsgUpdated, notify.Success)
	return true
}

// Remove deletes the user remotely and drops it from the collection
func (m *Manager) Remove(ctx context.Context, id int) bool {
	if err := m.api.Do(ctx, http.MethodDelete, fmt.Sprintf(userPathTemplate, id), nil, nil); err != nil {
		slog.Error("Failed to delete user", "id", id, "error", err)
		m.notifier.Push(MsgDeleteFailed, notify.Error)
		return false
	}

	m.mu.Lock()
	kept := m.users[:0:0]
	for _, u := range m.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	m.users = kept
	m.lastUpdated = time.Now()
	m.mu.Unlock()

	slog.Info("Deleted user", "id", id)
	m.notifier.Push(MsgDeleted, notify.Success)
	return true
}

// Reset drops the collection so nothing outlives the session that loaded it
func (m *Manager) Reset() {
	m.mu.Lock()
	m.users = []models.UserRecord{}
	m.lastUpdated = time.Time{}
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

func (m *Manager) indexLocked(id int) int {
	for i, u := range m.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) nextIDLocked() int {
	maxID := 0
	for _, u := range m.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
