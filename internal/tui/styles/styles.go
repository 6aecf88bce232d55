// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines dark and light palettes and rebuilds every style when the theme flips

package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color
}

var (
	// DarkPalette is used when the dark theme flag is set
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Danger:    lipgloss.Color("#EF4444"), // Red
		Info:      lipgloss.Color("#3B82F6"), // Blue
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Text:      lipgloss.Color("#F9FAFB"), // Light
		Surface:   lipgloss.Color("#374151"), // Elevated surface
		Accent:    lipgloss.Color("#8B5CF6"), // Lighter purple
	}

	// LightPalette keeps the same hues with text and surfaces inverted
	LightPalette = Palette{
		Primary:   lipgloss.Color("#6D28D9"),
		Secondary: lipgloss.Color("#047857"),
		Warning:   lipgloss.Color("#B45309"),
		Danger:    lipgloss.Color("#B91C1C"),
		Info:      lipgloss.Color("#1D4ED8"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#111827"),
		Surface:   lipgloss.Color("#E5E7EB"),
		Accent:    lipgloss.Color("#7C3AED"),
	}
)

var (
	dark = true

	// Colors of the active palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Status indicators
	StatusOK       lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusCritical lipgloss.Style

	// Panels
	Panel       lipgloss.Style
	ActivePanel lipgloss.Style
	Card        lipgloss.Style

	// Help text
	Help lipgloss.Style

	// Key style for keyboard shortcuts
	KeyStyle lipgloss.Style

	// Value style for emphasized data
	ValueStyle lipgloss.Style

	// Tabs in the navigation bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
)

func init() {
	Apply(true)
}

// Dark reports whether the dark palette is active
func Dark() bool {
	return dark
}

// Apply switches the active palette and rebuilds every style.
// Only call it from the bubbletea update loop.
func Apply(darkMode bool) {
	dark = darkMode
	p := LightPalette
	if darkMode {
		p = DarkPalette
	}

	Primary, Secondary, Warning, Danger = p.Primary, p.Secondary, p.Warning, p.Danger
	Info, Muted, Text, Surface, Accent = p.Info, p.Muted, p.Text, p.Surface, p.Accent

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(Muted).
		MarginBottom(1)

	StatusOK = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	StatusCritical = lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Padding(0, 1)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	TabActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)
}

// HuhTheme returns a huh theme matching the active palette
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Group styles (section headers)
	t.Group.Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(Muted).
		MarginBottom(1)

	// Focused field styles
	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(Danger)

	// Select field styles
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Text input styles
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(Text)

	// Button styles
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Primary).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(Muted).
		Background(Surface).
		Padding(0, 2).
		MarginRight(1)

	// Blurred field styles (inherit from focused with muted colors)
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(Muted)

	return t
}
