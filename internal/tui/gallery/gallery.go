// ABOUTME: Home screen gallery of user cards with summary metrics
// ABOUTME: Also renders the user detail overlay and the operator profile card

package gallery

import (
	"fmt"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/widgets"
	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the width of one user card including borders
const CardWidth = 30

// cardHeight is the rendered height of one card including borders
const cardHeight = 6

// Gallery displays users as a grid of cards
type Gallery struct {
	users   []models.UserRecord
	loading bool
	width   int
	height  int
}

// New creates a new gallery
func New(width, height int) *Gallery {
	return &Gallery{width: width, height: height}
}

// SetUsers refreshes the gallery with new records
func (g *Gallery) SetUsers(records []models.UserRecord) {
	g.users = records
}

// SetLoading marks a list request as in flight
func (g *Gallery) SetLoading(loading bool) {
	g.loading = loading
}

// SetSize updates the gallery dimensions
func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Columns returns how many cards fit side by side
func (g *Gallery) Columns() int {
	return max(1, (g.width+1)/(CardWidth+1))
}

// View renders the gallery
func (g *Gallery) View() string {
	if g.loading && len(g.users) == 0 {
		return styles.Panel.Width(max(g.width-2, 20)).Render("Loading users...")
	}

	var sb strings.Builder
	sb.WriteString(g.renderMetrics())
	sb.WriteString("\n\n")

	if len(g.users) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).
			Render("No users yet. Open the Users tab and press n to add one."))
		return sb.String()
	}

	cols := g.Columns()
	// metrics take four lines plus the gap
	rows := max(1, (g.height-6)/cardHeight)
	shown := min(len(g.users), cols*rows)

	var grid []string
	for start := 0; start < shown; start += cols {
		end := min(start+cols, shown)
		cards := make([]string, 0, end-start)
		for _, u := range g.users[start:end] {
			cards = append(cards, Card(u))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cards)...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, grid...))

	if hidden := len(g.users) - shown; hidden > 0 {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).
			Render(fmt.Sprintf("…and %d more on the Users tab", hidden)))
	}
	return sb.String()
}

func (g *Gallery) renderMetrics() string {
	companies := make(map[string]struct{})
	cities := make(map[string]struct{})
	for _, u := range g.users {
		if u.Company.Name != "" {
			companies[strings.ToLower(u.Company.Name)] = struct{}{}
		}
		if u.Address.City != "" {
			cities[strings.ToLower(u.Address.City)] = struct{}{}
		}
	}

	blocks := []string{
		widgets.CountBlock(icons.Users, "Users", len(g.users), "records", widgets.DefaultBlockWidth),
		widgets.CountBlock(icons.Building, "Companies", len(companies), "distinct", widgets.DefaultBlockWidth),
		widgets.CountBlock(icons.MapPin, "Cities", len(cities), "distinct", widgets.DefaultBlockWidth),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced(blocks)...)
}

// spaced puts a one-column gap between horizontally joined blocks
func spaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}

// Card renders one user as a gallery card
func Card(u models.UserRecord) string {
	inner := CardWidth - 4
	name := lipgloss.NewStyle().Foreground(styles.Text).Bold(true).
		Render(clip(u.Name, inner))
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	handle := "#" + fmt.Sprint(u.ID)
	if u.Username != "" {
		handle += " @" + u.Username
	}

	lines := []string{
		name,
		muted.Render(clip(handle, inner)),
		clip(icons.Mail.String()+" "+u.Email, inner),
		clip(icons.Building.String()+" "+orDash(u.Company.Name), inner),
	}
	return styles.Card.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

// Detail renders every field of a user for the view overlay
func Detail(u models.UserRecord) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", icons.User.String(), orDash(u.Name))))
	sb.WriteString("\n")

	field := func(icon icons.Icon, label, value string) {
		sb.WriteString(fmt.Sprintf("%s %-10s %s\n",
			icon.String(),
			styles.KeyStyle.Render(label),
			styles.ValueStyle.Render(orDash(value))))
	}

	field(icons.Info, "ID", fmt.Sprint(u.ID))
	field(icons.User, "Username", u.Username)
	field(icons.Mail, "Email", u.Email)
	field(icons.Phone, "Phone", u.Phone)
	field(icons.Globe, "Website", u.Website)

	sb.WriteString("\n")
	field(icons.MapPin, "Address", address(u.Address))
	if u.Address.Geo.Lat != "" || u.Address.Geo.Lng != "" {
		field(icons.MapPin, "Geo", u.Address.Geo.Lat+", "+u.Address.Geo.Lng)
	}

	sb.WriteString("\n")
	field(icons.Building, "Company", u.Company.Name)
	if u.Company.CatchPhrase != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).
			Render("  “" + u.Company.CatchPhrase + "”"))
		sb.WriteString("\n")
	}
	if u.Company.BS != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("  " + u.Company.BS))
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("e edit · d delete · esc close"))
	return styles.ActivePanel.Render(sb.String())
}

// ProfileCard renders the signed-in operator
func ProfileCard(p models.Profile) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", icons.User.String(), orDash(p.Name))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", icons.Mail.String(), p.Email))
	sb.WriteString(fmt.Sprintf("%s %s\n", icons.Lock.String(), widgets.RoleBadge(p.Role)))
	if p.Avatar != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render(p.Avatar))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("esc close"))
	return styles.ActivePanel.Render(sb.String())
}

func address(a models.Address) string {
	var parts []string
	for _, s := range []string{strings.TrimSpace(a.Street + " " + a.Suite), a.City, a.Zipcode} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// clip shortens s to n display cells
func clip(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
