// ABOUTME: Sign-in screen as a bubbletea model
// ABOUTME: Collects email and password with a huh form and shows the last failure inline

package login

import (
	"errors"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SubmittedMsg is sent when the operator submits credentials
type SubmittedMsg struct {
	Email    string
	Password string
}

// QuitMsg is sent when the operator leaves the sign-in screen
type QuitMsg struct{}

// Login is the sign-in form
type Login struct {
	form     *huh.Form
	email    string
	password string
	err      string
	busy     bool
	width    int
}

// New creates a sign-in form, pre-filling email when known
func New(email string) *Login {
	l := &Login{email: email}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&l.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password).
				Validate(validateRequired("password")),
		).Title(icons.Lock.String() + " Sign in").
			Description("Use your administrator account"),
	).WithTheme(styles.HuhTheme()).
		WithShowHelp(false)
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if l.busy {
			return l, nil
		}
		if key.String() == "esc" {
			return l, func() tea.Msg { return QuitMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.busy = true
		l.err = ""
		email, password := strings.TrimSpace(l.email), l.password
		return l, func() tea.Msg {
			return SubmittedMsg{Email: email, Password: password}
		}
	}
	return l, cmd
}

// Failed shows message under the form and lets the operator try again.
// The email is kept; the password is cleared.
func (l *Login) Failed(message string) tea.Cmd {
	l.busy = false
	l.err = message
	l.password = ""
	l.form = l.createForm()
	return l.form.Init()
}

// Busy reports whether a sign-in request is in flight
func (l *Login) Busy() bool {
	return l.busy
}

// Err returns the inline error text
func (l *Login) Err() string {
	return l.err
}

// SetWidth sets the form width
func (l *Login) SetWidth(width int) {
	l.width = width
	l.form = l.form.WithWidth(min(width, 60))
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder
	sb.WriteString(l.form.View())

	switch {
	case l.busy:
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("Signing in..."))
	case l.err != "":
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + l.err))
	}

	return styles.ActivePanel.Render(sb.String())
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(s, "@") {
		return errors.New("enter a valid email")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
