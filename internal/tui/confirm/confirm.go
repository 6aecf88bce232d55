// ABOUTME: Delete confirmation dialog as a bubbletea model
// ABOUTME: Wraps a huh confirm and reports the operator's answer for one user id

package confirm

import (
	"fmt"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmedMsg is sent when the operator agrees to delete
type ConfirmedMsg struct {
	ID int
}

// CancelledMsg is sent when the operator backs out
type CancelledMsg struct{}

// Dialog asks whether a user should be deleted
type Dialog struct {
	id     int
	name   string
	answer bool
	form   *huh.Form
}

// New creates a dialog for u
func New(u models.UserRecord) *Dialog {
	d := &Dialog{id: u.ID, name: u.Name}
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s Delete %s?", icons.Delete.String(), d.name)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&d.answer),
		),
	).WithTheme(styles.HuhTheme()).
		WithShowHelp(false)
	return d
}

// ID returns the user the dialog is about
func (d *Dialog) ID() int {
	return d.id
}

// Init implements tea.Model
func (d *Dialog) Init() tea.Cmd {
	return d.form.Init()
}

// Update implements tea.Model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return d, cancelled
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	switch d.form.State {
	case huh.StateCompleted:
		return d, d.result()
	case huh.StateAborted:
		return d, cancelled
	}
	return d, cmd
}

func (d *Dialog) result() tea.Cmd {
	if !d.answer {
		return cancelled
	}
	id := d.id
	return func() tea.Msg { return ConfirmedMsg{ID: id} }
}

func cancelled() tea.Msg {
	return CancelledMsg{}
}

// View implements tea.Model
func (d *Dialog) View() string {
	return styles.ActivePanel.BorderForeground(styles.Danger).Render(d.form.View())
}
