// ABOUTME: Root bubbletea model for the admin console
// ABOUTME: Manages screens and overlays and runs service calls as commands

package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/auth"
	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/notify"
	"github.com/Mossaabs03254/My-CRUd-App/internal/store"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/confirm"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/gallery"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/login"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/settings"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/userform"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/usertable"
	"github.com/Mossaabs03254/My-CRUd-App/internal/users"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenUsers
	ScreenSettings
)

// tabs are the screens reachable once signed in, in tab order
var tabs = []Screen{ScreenHome, ScreenUsers, ScreenSettings}

// String returns the tab label of a screen
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Sign in"
	case ScreenHome:
		return "Home"
	case ScreenUsers:
		return "Users"
	case ScreenSettings:
		return "Settings"
	default:
		return "unknown"
	}
}

// Overlay is a dialog drawn in place of the screen body
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayForm
	OverlayDetail
	OverlayConfirm
	OverlayProfile
)

// Layout constants
const (
	minTerminalWidth = 80 // Frame never renders narrower than this
	frameOverhead    = 5  // header, tab bar, blank line, toast gap and footer
	maxToastWidth    = 44
)

// usersLoadedMsg is sent when a list request completes
type usersLoadedMsg struct{ ok bool }

// loginResultMsg is sent when a sign-in attempt completes
type loginResultMsg struct {
	profile models.Profile
	err     error
}

// loggedOutMsg is sent once local session state is cleared
type loggedOutMsg struct{}

// opDoneMsg is sent when a create, update or delete completes
type opDoneMsg struct{ ok bool }

// tokenRefreshedMsg is sent when a token refresh completes
type tokenRefreshedMsg struct{ err error }

// toastsChangedMsg is sent by the toast sink from any goroutine
type toastsChangedMsg struct{}

// tickMsg keeps the footer's "Updated" label and token expiry current
type tickMsg time.Time

var errNoToken = errors.New("no token stored")

// Deps are the services the console drives
type Deps struct {
	Auth   *auth.Manager
	Store  *store.Store
	API    users.API
	APIURL string
}

// App is the root model for the TUI
type App struct {
	auth   *auth.Manager
	store  *store.Store
	users  *users.Manager
	toasts *notify.Sink
	apiURL string
	now    func() time.Time

	screen  Screen
	overlay Overlay
	width   int
	height  int
	email   string // last email used to sign in

	// Child models
	login    *login.Login
	gallery  *gallery.Gallery
	table    *usertable.Table
	settings *settings.Settings
	form     *userform.Form
	confirm  *confirm.Dialog
	detail   models.UserRecord
}

// New creates the console. A resumable session starts on the home screen.
func New(deps Deps) *App {
	sink := notify.New()
	dark := deps.Store.DarkMode()
	styles.Apply(dark)

	a := &App{
		auth:     deps.Auth,
		store:    deps.Store,
		users:    users.New(deps.API, sink),
		toasts:   sink,
		apiURL:   deps.APIURL,
		now:      time.Now,
		screen:   ScreenLogin,
		gallery:  gallery.New(minTerminalWidth, 24),
		table:    usertable.New(),
		settings: settings.New(dark),
	}

	session := deps.Auth.CurrentSession()
	if session.User != nil {
		a.email = session.User.Email
	}
	if deps.Auth.State() == auth.LoggedIn {
		a.screen = ScreenHome
	} else {
		a.login = login.New(a.email)
	}
	a.syncSettings()
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.tick()}
	if a.screen == ScreenLogin {
		cmds = append(cmds, a.login.Init())
		return tea.Batch(cmds...)
	}
	if a.auth.NeedsRefresh() {
		cmds = append(cmds, a.refreshToken())
	}
	cmds = append(cmds, a.loadUsers(), a.settings.Init())
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tickMsg:
		a.syncSettings()
		return a, a.tick()

	case toastsChangedMsg:
		// re-render only
		return a, nil

	case login.SubmittedMsg:
		a.email = msg.Email
		return a, a.signIn(msg.Email, msg.Password)

	case login.QuitMsg:
		return a, tea.Quit

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case loggedOutMsg:
		a.toasts.Push("Signed out", notify.Info)
		a.overlay = OverlayNone
		a.form, a.confirm = nil, nil
		a.users.Reset()
		a.table.SetUsers(nil)
		a.gallery.SetUsers(nil)
		a.screen = ScreenLogin
		a.login = login.New(a.email)
		a.resize()
		a.syncSettings()
		return a, a.login.Init()

	case usersLoadedMsg:
		a.gallery.SetLoading(false)
		a.syncUsers()
		return a, nil

	case opDoneMsg:
		a.syncUsers()
		return a, nil

	case tokenRefreshedMsg:
		if msg.err != nil {
			slog.Warn("Token refresh failed", "error", msg.err)
			a.toasts.Push("Failed to refresh session", notify.Error)
		} else {
			a.toasts.Push("Session refreshed", notify.Success)
		}
		a.syncSettings()
		return a, nil

	case usertable.ViewMsg:
		if u, ok := a.users.Find(msg.ID); ok {
			a.detail = u
			a.overlay = OverlayDetail
		}
		return a, nil

	case usertable.AddMsg:
		return a, a.openForm(nil)

	case usertable.EditMsg:
		if u, ok := a.users.Find(msg.ID); ok {
			return a, a.openForm(&u)
		}
		return a, nil

	case usertable.DeleteMsg:
		if u, ok := a.users.Find(msg.ID); ok {
			return a, a.openConfirm(u)
		}
		return a, nil

	case userform.SubmittedMsg:
		a.overlay = OverlayNone
		a.form = nil
		return a, a.saveUser(msg.ID, msg.Patch)

	case userform.CancelledMsg:
		a.overlay = OverlayNone
		a.form = nil
		return a, nil

	case confirm.ConfirmedMsg:
		a.overlay = OverlayNone
		a.confirm = nil
		return a, a.removeUser(msg.ID)

	case confirm.CancelledMsg:
		a.overlay = OverlayNone
		a.confirm = nil
		return a, nil

	case settings.ThemeSelectedMsg:
		a.applyTheme(msg.Dark)
		return a, nil
	}

	// Forward everything else to the focused child; huh forms and text
	// inputs depend on their own internal messages.
	return a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.screen == ScreenLogin {
		return a.forward(msg)
	}

	switch a.overlay {
	case OverlayForm, OverlayConfirm:
		return a.forward(msg)
	case OverlayDetail:
		return a.handleDetailKey(msg)
	case OverlayProfile:
		switch msg.String() {
		case "esc", "enter", "q", "p":
			a.overlay = OverlayNone
		}
		return a, nil
	}

	if a.screen == ScreenUsers && a.table.Searching() {
		return a.forward(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "t":
		a.applyTheme(!styles.Dark())
		return a, a.settings.SyncTheme(styles.Dark())
	case "ctrl+l":
		return a, a.signOut()
	case "r":
		return a, a.loadUsers()
	case "ctrl+r":
		return a, a.refreshToken()
	case "p":
		a.overlay = OverlayProfile
		return a, nil
	case "tab":
		return a, a.switchTo(a.nextTab(1))
	case "shift+tab":
		return a, a.switchTo(a.nextTab(-1))
	case "1", "2", "3":
		return a, a.switchTo(tabs[int(msg.String()[0]-'1')])
	}

	switch a.screen {
	case ScreenUsers:
		return a.forward(msg)
	case ScreenSettings:
		return a.forward(msg)
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		a.overlay = OverlayNone
	case "e":
		u := a.detail
		return a, a.openForm(&u)
	case "d":
		return a, a.openConfirm(a.detail)
	}
	return a, nil
}

// forward routes msg to whichever child currently has focus
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case a.screen == ScreenLogin && a.login != nil:
		_, cmd = a.login.Update(msg)
	case a.overlay == OverlayForm && a.form != nil:
		_, cmd = a.form.Update(msg)
	case a.overlay == OverlayConfirm && a.confirm != nil:
		_, cmd = a.confirm.Update(msg)
	case a.overlay != OverlayNone:
	case a.screen == ScreenUsers:
		_, cmd = a.table.Update(msg)
	case a.screen == ScreenSettings:
		_, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		message := msg.err.Error()
		var le *auth.LoginError
		if errors.As(msg.err, &le) {
			message = le.Message
		}
		return a, a.login.Failed(message)
	}

	a.login = nil
	a.screen = ScreenHome
	a.resize()
	a.syncSettings()
	a.toasts.Push("Welcome, "+msg.profile.Name, notify.Info)
	return a, tea.Batch(a.loadUsers(), a.settings.Init())
}

func (a *App) nextTab(step int) Screen {
	for i, s := range tabs {
		if s == a.screen {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return ScreenHome
}

func (a *App) switchTo(s Screen) tea.Cmd {
	a.screen = s
	if s == ScreenSettings {
		a.syncSettings()
		return a.settings.Init()
	}
	return nil
}

func (a *App) openForm(record *models.UserRecord) tea.Cmd {
	a.form = userform.New(record)
	a.form.SetWidth(a.overlayWidth())
	a.overlay = OverlayForm
	return a.form.Init()
}

func (a *App) openConfirm(u models.UserRecord) tea.Cmd {
	a.confirm = confirm.New(u)
	a.overlay = OverlayConfirm
	return a.confirm.Init()
}

// applyTheme switches the palette, persists the choice and restyles children
func (a *App) applyTheme(dark bool) {
	styles.Apply(dark)
	if err := a.store.SetDarkMode(dark); err != nil {
		slog.Error("Failed to persist theme", "error", err)
	}
	a.table.ThemeChanged()
}

// syncUsers copies the manager's collection into the views
func (a *App) syncUsers() {
	records := a.users.Users()
	a.table.SetUsers(records)
	a.gallery.SetUsers(records)
}

// syncSettings refreshes the settings snapshot
func (a *App) syncSettings() {
	info, err := a.auth.TokenInfo()
	if !a.auth.IsAuthenticated() {
		err = errNoToken
	}
	a.settings.SetInfo(settings.Info{
		APIURL:   a.apiURL,
		State:    a.auth.State().String(),
		Session:  a.auth.CurrentSession(),
		Token:    info,
		TokenErr: err,
		Now:      a.now(),
	})
}

func (a *App) resize() {
	w := a.frameWidth()
	h := a.contentHeight()
	a.gallery.SetSize(w, h)
	a.table.SetSize(w)
	a.settings.SetWidth(w)
	if a.login != nil {
		a.login.SetWidth(w)
	}
	if a.form != nil {
		a.form.SetWidth(a.overlayWidth())
	}
}

// frameWidth is the drawable width. One column is left free so the frame
// never wraps on terminals that reserve the last cell.
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// contentHeight is the height left for the screen body
func (a *App) contentHeight() int {
	return max(a.height-frameOverhead-a.toasts.Len(), 10)
}

func (a *App) overlayWidth() int {
	return min(a.frameWidth()-8, 72)
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// loadUsers lists users in the background
func (a *App) loadUsers() tea.Cmd {
	a.gallery.SetLoading(true)
	return func() tea.Msg {
		return usersLoadedMsg{ok: a.users.List(context.Background())}
	}
}

func (a *App) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		profile, err := a.auth.Login(context.Background(), email, password)
		return loginResultMsg{profile: profile, err: err}
	}
}

func (a *App) signOut() tea.Cmd {
	return func() tea.Msg {
		a.auth.Logout(context.Background())
		return loggedOutMsg{}
	}
}

func (a *App) refreshToken() tea.Cmd {
	return func() tea.Msg {
		return tokenRefreshedMsg{err: a.auth.Refresh(context.Background())}
	}
}

// saveUser creates when id is 0 and updates otherwise
func (a *App) saveUser(id int, patch models.UserPatch) tea.Cmd {
	return func() tea.Msg {
		if id == 0 {
			_, ok := a.users.Create(context.Background(), patch)
			return opDoneMsg{ok: ok}
		}
		return opDoneMsg{ok: a.users.Update(context.Background(), id, patch)}
	}
}

func (a *App) removeUser(id int) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{ok: a.users.Remove(context.Background(), id)}
	}
}

// Run starts the TUI
func Run(deps Deps) error {
	app := New(deps)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	// Send blocks until the loop reads it, and pushes can happen inside Update
	app.toasts.OnChange(func() { go p.Send(toastsChangedMsg{}) })

	_, err := p.Run()
	return err
}
