// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for toast kinds and operator roles

package widgets

import (
	"fmt"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/notify"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// background returns the badge color for a level from the active palette
func background(level StatusLevel) lipgloss.Color {
	switch level {
	case StatusOK:
		return styles.Secondary
	case StatusWarning:
		return styles.Warning
	case StatusCritical:
		return styles.Danger
	case StatusInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	fg := lipgloss.Color("#FFFFFF")
	if level == StatusWarning {
		fg = lipgloss.Color("#000000")
	}

	style := lipgloss.NewStyle().
		Background(background(level)).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// LevelForKind maps a toast kind to a status level
func LevelForKind(kind notify.Kind) StatusLevel {
	switch kind {
	case notify.Success:
		return StatusOK
	case notify.Error:
		return StatusCritical
	default:
		return StatusInfo
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	style := lipgloss.NewStyle().Foreground(background(level))
	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	textStyle := lipgloss.NewStyle().Foreground(background(level))
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}

// Toast renders one toast line with a colored left edge. width includes the edge.
func Toast(text string, kind notify.Kind, width int) string {
	level := LevelForKind(kind)
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(background(level)).
		Padding(0, 1)
	if width > 1 {
		style = style.Width(width - 1)
	}
	return style.Render(StatusText(text, level))
}

// RoleBadge renders the operator role; administrators stand out
func RoleBadge(role string) string {
	if role == "" {
		return Badge("guest", StatusNeutral)
	}
	if strings.Contains(strings.ToLower(role), "admin") {
		return Badge(role, StatusInfo)
	}
	return Badge(role, StatusOK)
}
