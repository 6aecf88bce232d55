// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// glyphTerminals ship or commonly bundle a patched font
var glyphTerminals = []string{"iterm", "alacritty", "wezterm", "kitty", "ghostty"}

// nerdFontsFor decides the icon set from the environment. CRUDADMIN_NERD_FONTS
// wins when set; otherwise the terminal program is matched against
// glyphTerminals.
func nerdFontsFor(getenv func(string) string) bool {
	if v := getenv("CRUDADMIN_NERD_FONTS"); v != "" {
		on, err := strconv.ParseBool(v)
		return err == nil && on
	}
	name := strings.ToLower(getenv("TERM_PROGRAM") + " " + getenv("TERM"))
	for _, t := range glyphTerminals {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

var nerdFonts = sync.OnceValue(func() bool { return nerdFontsFor(os.Getenv) })

// HasNerdFonts reports whether glyph icons are rendered, decided once per process
func HasNerdFonts() bool {
	return nerdFonts()
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// People and records
	User     = Icon{"", "●"} // nf-fa-user
	Users    = Icon{"", "◉"} // nf-fa-users
	Mail     = Icon{"", "✉"} // nf-fa-envelope
	Phone    = Icon{"", "☎"} // nf-fa-phone
	Globe    = Icon{"", "◍"} // nf-fa-globe
	Building = Icon{"", "▦"} // nf-fa-building
	MapPin   = Icon{"", "⌖"} // nf-fa-map_marker

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-fa-check_circle
	Warning  = Icon{"", "⚠"} // nf-fa-warning
	Critical = Icon{"", "✗"} // nf-fa-times_circle
	Info     = Icon{"", "ℹ"} // nf-fa-info_circle

	// Actions
	Refresh = Icon{"󰑓", "↻"} // nf-md-refresh
	Search  = Icon{"", "⌕"} // nf-fa-search
	Add     = Icon{"", "+"} // nf-fa-plus
	Edit    = Icon{"", "✎"} // nf-fa-pencil
	Delete  = Icon{"", "⌫"} // nf-fa-trash
	View    = Icon{"", "◎"} // nf-fa-eye
	Logout  = Icon{"󰍃", "⇥"} // nf-md-logout
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App      = Icon{"󰒋", "◈"} // nf-md-server
	Home     = Icon{"", "⌂"} // nf-fa-home
	Settings = Icon{"󰒓", "⚙"} // nf-md-cog
	Lock     = Icon{"", "⚿"} // nf-fa-lock
	Moon     = Icon{"", "☾"} // nf-fa-moon_o
	Sun      = Icon{"", "☀"} // nf-fa-sun_o
)
