// ABOUTME: Rendering for the root model: frame, tabs, overlays and toasts
// ABOUTME: Header and footer are drawn to the exact frame width

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/gallery"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/widgets"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch {
	case a.screen == ScreenLogin:
		content = a.viewLogin()
	case a.overlay != OverlayNone:
		content = a.viewOverlay()
	default:
		content = a.renderTabs() + "\n" + a.viewScreen()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLogin() string {
	if a.login == nil {
		return ""
	}
	return lipgloss.Place(a.frameWidth(), a.contentHeight(), lipgloss.Center, lipgloss.Center, a.login.View())
}

func (a *App) viewScreen() string {
	switch a.screen {
	case ScreenHome:
		return a.gallery.View()
	case ScreenUsers:
		return a.table.View()
	case ScreenSettings:
		return a.settings.View()
	}
	return ""
}

func (a *App) viewOverlay() string {
	var body string
	switch a.overlay {
	case OverlayForm:
		if a.form != nil {
			body = styles.ActivePanel.Render(a.form.View())
		}
	case OverlayConfirm:
		if a.confirm != nil {
			body = a.confirm.View()
		}
	case OverlayDetail:
		body = gallery.Detail(a.detail)
	case OverlayProfile:
		if p := a.auth.CurrentSession().User; p != nil {
			body = gallery.ProfileCard(*p)
		} else {
			body = styles.Panel.Render("No profile stored")
		}
	}
	return lipgloss.Place(a.frameWidth(), a.contentHeight(), lipgloss.Center, lipgloss.Center, body)
}

// renderTabs draws the screen switcher
func (a *App) renderTabs() string {
	tabIcons := map[Screen]icons.Icon{
		ScreenHome:     icons.Home,
		ScreenUsers:    icons.Users,
		ScreenSettings: icons.Settings,
	}
	parts := make([]string, 0, len(tabs))
	for i, s := range tabs {
		label := fmt.Sprintf("%d %s %s", i+1, tabIcons[s].String(), s)
		if s == a.screen {
			parts = append(parts, styles.TabActive.Render(label))
		} else {
			parts = append(parts, styles.TabInactive.Render(label))
		}
	}
	return " " + strings.Join(parts, " ")
}

// renderHeader creates the header bar with app branding and the operator
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("CRUD Admin"))

	rightText := ""
	if a.screen != ScreenLogin {
		if p := a.auth.CurrentSession().User; p != nil {
			rightText = " " + contextStyle.Render(p.Name) + " " + widgets.RoleBadge(p.Role) + " "
		}
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := max(width-4-leftWidth-rightWidth, 0) // -4 for ╭─ and ─╮

	return borderStyle.Render("╭─") + leftText +
		borderStyle.Render(strings.Repeat("─", fillWidth)) +
		rightText + borderStyle.Render("─╮")
}

// shortcuts returns the key hints for the current screen and overlay
func (a *App) shortcuts() []string {
	if a.screen == ScreenLogin {
		return []string{"tab Next", "enter Sign-in", "esc Quit"}
	}
	switch a.overlay {
	case OverlayForm:
		return []string{"enter Next", "shift+← Back", "esc Cancel"}
	case OverlayConfirm:
		return []string{"←→ Choose", "enter Confirm", "esc Cancel"}
	case OverlayDetail:
		return []string{"e Edit", "d Delete", "esc Close"}
	case OverlayProfile:
		return []string{"esc Close"}
	}

	switch a.screen {
	case ScreenUsers:
		if a.table.Searching() {
			return []string{"enter Done", "esc Clear"}
		}
		return []string{"/ Search", "←→ Page", "n New", "e Edit", "d Delete", "t Theme", "q Quit"}
	case ScreenSettings:
		return []string{"enter Apply", "ctrl+r Refresh-token", "ctrl+l Logout", "q Quit"}
	}
	return []string{"tab Switch", "r Refresh", "p Profile", "t Theme", "ctrl+l Logout", "q Quit"}
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	rightText := ""
	if a.screen != ScreenLogin {
		switch {
		case a.users.Loading():
			rightText = " " + statusStyle.Render(icons.Refresh.String()+" Loading") + " "
		case !a.users.LastUpdated().IsZero():
			rightText = " " + statusStyle.Render("Updated "+a.formatTimeSince(a.users.LastUpdated())) + " "
		}
	}

	rightWidth := lipgloss.Width(rightText)

	// Drop trailing hints until the line fits
	shortcuts := a.shortcuts()
	var leftText string
	for n := len(shortcuts); n >= 0; n-- {
		styled := make([]string, 0, n)
		for _, s := range shortcuts[:n] {
			key, label, _ := strings.Cut(s, " ")
			styled = append(styled, keyStyle.Render(key)+" "+labelStyle.Render(label))
		}
		leftText = " " + strings.Join(styled, "  ") + " "
		if lipgloss.Width(leftText)+rightWidth+4 <= width {
			break
		}
	}
	leftWidth := lipgloss.Width(leftText)
	fillWidth := max(width-4-leftWidth-rightWidth, 0) // -4 for ╰─ and ─╯

	return borderStyle.Render("╰─") + leftText +
		borderStyle.Render(strings.Repeat("─", fillWidth)) +
		rightText + borderStyle.Render("─╯")
}

// renderToasts stacks visible toasts against the right edge, oldest first
func (a *App) renderToasts() string {
	toasts := a.toasts.Toasts()
	if len(toasts) == 0 {
		return ""
	}
	width := min(maxToastWidth, a.frameWidth()/2)
	lines := make([]string, len(toasts))
	for i, t := range toasts {
		lines[i] = widgets.Toast(t.Text, t.Kind, width)
	}
	stack := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.PlaceHorizontal(a.frameWidth(), lipgloss.Right, stack)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := a.now().Sub(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header, toasts and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	if toasts := a.renderToasts(); toasts != "" {
		sb.WriteString(toasts)
		sb.WriteString("\n")
	}
	sb.WriteString(a.renderFooter())

	return sb.String()
}
