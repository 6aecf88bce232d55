// ABOUTME: Settings screen with theme selection and session details
// ABOUTME: Shows who is signed in, the service URL and how much token lifetime remains

package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/auth"
	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/store"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ThemeSelectedMsg is sent when the operator picks a theme
type ThemeSelectedMsg struct {
	Dark bool
}

// Info is the session snapshot the screen displays
type Info struct {
	APIURL   string
	State    string
	Session  models.Session
	Token    auth.TokenInfo
	TokenErr error
	Now      time.Time
}

type option struct {
	label string
	value string
}

var themeOptions = []option{
	{label: "Dark", value: store.ThemeDark},
	{label: "Light", value: store.ThemeLight},
}

// Settings is the settings screen
type Settings struct {
	theme string
	form  *huh.Form
	info  Info
	width int
}

// New creates the screen with the current theme selected
func New(dark bool) *Settings {
	s := &Settings{}
	s.setTheme(dark)
	return s
}

func (s *Settings) setTheme(dark bool) {
	s.theme = store.ThemeLight
	if dark {
		s.theme = store.ThemeDark
	}
	s.form = s.createForm()
}

func (s *Settings) createForm() *huh.Form {
	var options []huh.Option[string]
	for _, opt := range themeOptions {
		options = append(options, huh.NewOption(opt.label, opt.value))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(options...).
				Value(&s.theme),
		),
	).WithTheme(styles.HuhTheme()).
		WithShowHelp(false)
}

// SyncTheme reflects a theme change made elsewhere, such as the t key
func (s *Settings) SyncTheme(dark bool) tea.Cmd {
	s.setTheme(dark)
	return s.form.Init()
}

// SetInfo replaces the session snapshot
func (s *Settings) SetInfo(info Info) {
	s.info = info
}

// SetWidth sets the rendering width
func (s *Settings) SetWidth(width int) {
	s.width = width
}

// Init implements tea.Model
func (s *Settings) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		dark := s.theme == store.ThemeDark
		s.form = s.createForm()
		return s, tea.Batch(s.form.Init(), func() tea.Msg { return ThemeSelectedMsg{Dark: dark} })
	case huh.StateAborted:
		s.form = s.createForm()
		return s, s.form.Init()
	}
	return s, cmd
}

// View implements tea.Model
func (s *Settings) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Settings.String() + " Settings"))
	sb.WriteString("\n")
	sb.WriteString(s.form.View())
	sb.WriteString("\n\n")
	sb.WriteString(s.renderSession())
	sb.WriteString(styles.Help.Render("↑/↓ choose · enter apply · t toggle theme"))

	width := max(s.width-2, 40)
	return styles.Panel.Width(width).Render(sb.String())
}

func (s *Settings) renderSession() string {
	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", styles.KeyStyle.Render(label), value))
	}

	row("Service", styles.ValueStyle.Render(s.info.APIURL))
	row("State", styles.ValueStyle.Render(s.info.State))
	if p := s.info.Session.User; p != nil {
		row("Operator", fmt.Sprintf("%s <%s> %s", styles.ValueStyle.Render(p.Name), p.Email, widgets.RoleBadge(p.Role)))
	}
	sb.WriteString("\n")
	sb.WriteString(s.renderToken())
	return sb.String()
}

func (s *Settings) renderToken() string {
	muted := lipgloss.NewStyle().Foreground(styles.Muted)
	switch {
	case errors.Is(s.info.TokenErr, auth.ErrOpaqueToken):
		return muted.Render("Token is opaque; expiry unknown") + "\n"
	case s.info.TokenErr != nil:
		return muted.Render("No token stored") + "\n"
	}

	now := s.info.Now
	if now.IsZero() {
		now = time.Now()
	}
	tok := s.info.Token

	var sb strings.Builder
	if tok.ExpiresAt.IsZero() {
		sb.WriteString("Token never expires\n")
		return sb.String()
	}

	if used := tok.LifetimeUsed(now); used >= 0 {
		sb.WriteString("Token lifetime\n")
		sb.WriteString(widgets.ProgressBarWithLabel(used, widgets.ProgressBarConfig{
			Width:         30,
			WarnThreshold: 80,
			CritThreshold: 95,
		}))
		sb.WriteString("\n")
	}

	switch {
	case tok.Expired(now):
		sb.WriteString(widgets.StatusText("Expired "+tok.ExpiresAt.Local().Format(time.Kitchen), widgets.StatusCritical))
	case tok.ExpiresAt.Sub(now) <= auth.RefreshWindow:
		sb.WriteString(widgets.StatusText("Expires soon, refresh with ctrl+r", widgets.StatusWarning))
	default:
		sb.WriteString(widgets.StatusText(
			fmt.Sprintf("Expires in %s", tok.ExpiresAt.Sub(now).Round(time.Minute)), widgets.StatusOK))
	}
	sb.WriteString("\n")
	return sb.String()
}
