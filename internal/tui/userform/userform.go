// ABOUTME: Create/edit user form as a bubbletea model
// ABOUTME: Three huh form steps with a progress indicator; emits only the fields that changed

package userform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SubmittedMsg is sent when the form finishes. ID is 0 for a new user.
type SubmittedMsg struct {
	ID    int
	Patch models.UserPatch
}

// CancelledMsg is sent when the form is cancelled
type CancelledMsg struct{}

// Step names for progress indicator
var stepNames = []string{"Profile", "Address", "Company"}

// values are the form fields as strings for huh
type values struct {
	name, username, email, phone, website string
	street, suite, city, zipcode         string
	company, catchPhrase, bs             string
}

func valuesFrom(u models.UserRecord) values {
	return values{
		name: u.Name, username: u.Username, email: u.Email, phone: u.Phone, website: u.Website,
		street: u.Address.Street, suite: u.Address.Suite, city: u.Address.City, zipcode: u.Address.Zipcode,
		company: u.Company.Name, catchPhrase: u.Company.CatchPhrase, bs: u.Company.BS,
	}
}

// Form manages the user form flow
type Form struct {
	original *models.UserRecord // nil when creating
	v        values
	form     *huh.Form
	step     int
	width    int
}

// New creates a form. A nil record starts an empty create form; otherwise the
// form edits a copy of the record.
func New(record *models.UserRecord) *Form {
	f := &Form{step: 1}
	if record != nil {
		orig := *record
		f.original = &orig
		f.v = valuesFrom(orig)
	}
	f.form = f.createStepForm()
	return f
}

// Editing reports whether the form edits an existing user
func (f *Form) Editing() bool {
	return f.original != nil
}

// Title describes what the form does
func (f *Form) Title() string {
	if f.original != nil {
		return fmt.Sprintf("%s Edit %s", icons.Edit.String(), f.original.Name)
	}
	return icons.Add.String() + " New user"
}

func (f *Form) createStepForm() *huh.Form {
	var group *huh.Group
	switch f.step {
	case 1:
		group = huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.v.name).Validate(required("name")),
			huh.NewInput().Title("Username").Value(&f.v.username),
			huh.NewInput().Title("Email").Value(&f.v.email).Validate(validateEmail),
			huh.NewInput().Title("Phone").Value(&f.v.phone),
			huh.NewInput().Title("Website").Value(&f.v.website),
		)
	case 2:
		group = huh.NewGroup(
			huh.NewInput().Title("Street").Value(&f.v.street),
			huh.NewInput().Title("Suite").Value(&f.v.suite),
			huh.NewInput().Title("City").Value(&f.v.city),
			huh.NewInput().Title("Zip code").Value(&f.v.zipcode),
		)
	default:
		group = huh.NewGroup(
			huh.NewInput().Title("Company").Value(&f.v.company),
			huh.NewInput().Title("Catch phrase").Value(&f.v.catchPhrase),
			huh.NewInput().Title("BS").Value(&f.v.bs),
		)
	}

	form := huh.NewForm(group).
		WithTheme(styles.HuhTheme()).
		WithShowHelp(false)
	if f.width > 0 {
		form = form.WithWidth(f.width)
	}
	return form
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CancelledMsg{} }
		case "shift+left":
			if f.step > 1 {
				f.step--
				f.form = f.createStepForm()
				return f, f.form.Init()
			}
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f.advanceStep()
	}
	return f, cmd
}

func (f *Form) advanceStep() (tea.Model, tea.Cmd) {
	if f.step < len(stepNames) {
		f.step++
		f.form = f.createStepForm()
		return f, f.form.Init()
	}

	msg := SubmittedMsg{Patch: f.Patch()}
	if f.original != nil {
		msg.ID = f.original.ID
	}
	return f, func() tea.Msg { return msg }
}

// Patch returns the fields to send. Creating sends every non-empty field;
// editing sends only fields that differ from the original record. Address
// and company travel as whole values.
func (f *Form) Patch() models.UserPatch {
	base := models.UserRecord{}
	if f.original != nil {
		base = *f.original
	}
	v := f.v
	var p models.UserPatch

	field := func(value, old string) *string {
		value = strings.TrimSpace(value)
		if value == old || (f.original == nil && value == "") {
			return nil
		}
		return models.String(value)
	}
	p.Name = field(v.name, base.Name)
	p.Username = field(v.username, base.Username)
	p.Email = field(v.email, base.Email)
	p.Phone = field(v.phone, base.Phone)
	p.Website = field(v.website, base.Website)

	addr := base.Address
	addr.Street, addr.Suite = strings.TrimSpace(v.street), strings.TrimSpace(v.suite)
	addr.City, addr.Zipcode = strings.TrimSpace(v.city), strings.TrimSpace(v.zipcode)
	if addr != base.Address {
		p.Address = &addr
	}

	company := models.Company{
		Name:        strings.TrimSpace(v.company),
		CatchPhrase: strings.TrimSpace(v.catchPhrase),
		BS:          strings.TrimSpace(v.bs),
	}
	if company != base.Company {
		p.Company = &company
	}
	return p
}

// Step returns the current 1-based step
func (f *Form) Step() int {
	return f.step
}

// SetWidth sets the form width for proper rendering
func (f *Form) SetWidth(width int) {
	f.width = width
	f.form = f.form.WithWidth(width)
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(f.Title()))
	sb.WriteString("\n")
	sb.WriteString(f.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(f.form.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter next · shift+← previous step · esc cancel"))

	return sb.String()
}

// renderProgress renders the step progress indicator
func (f *Form) renderProgress() string {
	width := max(f.width-1, 50)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == f.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	filledWidth := (f.step * barWidth) / len(stepNames)
	progressBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	title := "Step"
	topBorder := "┌─ " + titleStyle.Render(title) + " " + strings.Repeat("─", max(0, width-5-lipgloss.Width(title))) + "┐"
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressLinePadded := "│  " + progressBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !strings.Contains(s, "@") {
		return errors.New("enter a valid email")
	}
	return nil
}
