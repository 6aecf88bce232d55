// ABOUTME: Progress bar with visual threshold zones
// ABOUTME: Used for token lifetime, turning amber then red as expiry nears

package widgets

import (
	"fmt"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where warning zone starts (default 80)
	CritThreshold float64 // Percentage where critical zone starts (default 95)
}

// DefaultProgressBarConfig returns sensible defaults
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:         20,
		WarnThreshold: 80,
		CritThreshold: 95,
	}
}

// ProgressBar renders a bar whose filled cells are colored by the zone they fall in
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	percent = min(max(percent, 0), 100)

	filled := min(int(percent/100.0*float64(config.Width)), config.Width)
	warnPos := int(config.WarnThreshold / 100.0 * float64(config.Width))
	critPos := int(config.CritThreshold / 100.0 * float64(config.Width))

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < config.Width; i++ {
		char, color := "░", styles.Surface
		if i < filled {
			char = "█"
			switch {
			case i >= critPos:
				color = styles.Danger
			case i >= warnPos:
				color = styles.Warning
			default:
				color = styles.Secondary
			}
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(char))
	}
	bar.WriteString("]")
	return bar.String()
}

// ProgressBarWithLabel renders the bar followed by its percentage and a status icon
func ProgressBarWithLabel(percent float64, config ProgressBarConfig) string {
	level := StatusOK
	switch {
	case percent >= config.CritThreshold:
		level = StatusCritical
	case percent >= config.WarnThreshold:
		level = StatusWarning
	}
	label := lipgloss.NewStyle().Foreground(background(level)).Render(fmt.Sprintf("%3.0f%%", percent))
	return fmt.Sprintf("%s %s %s", ProgressBar(percent, config), label, StatusIcon(level))
}
