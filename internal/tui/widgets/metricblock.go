// ABOUTME: Compact metric block widget for the home screen
// ABOUTME: Shows an icon, a title in the border, a value and a subtitle

package widgets

import (
	"fmt"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultBlockWidth is the width of a metric block including borders
const DefaultBlockWidth = 22

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title, value, subtitle string, width int) string {
	if width <= 0 {
		width = DefaultBlockWidth
	}
	// border + padding
	innerWidth := width - 4

	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	valueStyle := lipgloss.NewStyle().Foreground(styles.Text).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	topBorder := borderStyle.Render("┌─ ") + titleStyle.Render(titleStr) +
		borderStyle.Render(" "+strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1))+"┐")

	line := func(s string) string {
		pad := max(0, innerWidth-lipgloss.Width(s))
		return borderStyle.Render("│  ") + s + strings.Repeat(" ", pad) + borderStyle.Render("│")
	}

	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", width-2) + "┘")

	return strings.Join([]string{
		topBorder,
		line(valueStyle.Render(truncate(value, innerWidth))),
		line(subtitleStyle.Render(truncate(subtitle, innerWidth))),
		bottomBorder,
	}, "\n")
}

// CountBlock renders a simple count metric
func CountBlock(icon icons.Icon, title string, count int, label string, width int) string {
	return MetricBlock(icon, title, fmt.Sprintf("%d", count), label, width)
}

// truncate shortens a string to maxLen display cells with ellipsis if needed
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 1 {
		return string(r[:max(0, maxLen)])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > maxLen {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
