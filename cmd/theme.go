// ABOUTME: Theme command for the crudadmin CLI
// ABOUTME: Shows or sets the persisted console theme

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Mossaabs03254/My-CRUd-App/internal/store"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the console theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{store.ThemeDark, store.ThemeLight},
	Run: func(cmd *cobra.Command, args []string) {
		exitWith(runTheme(os.Stdout, args))
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// runTheme prints the theme, setting it first when an argument is given
func runTheme(w io.Writer, args []string) int {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	if len(args) == 1 {
		switch args[0] {
		case store.ThemeDark, store.ThemeLight:
			if err := s.store.SetDarkMode(args[0] == store.ThemeDark); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return exitError
			}
		default:
			fmt.Fprintf(w, "Error: unknown theme %q (use dark or light)\n", args[0])
			return exitError
		}
	}

	theme := store.ThemeLight
	if s.store.DarkMode() {
		theme = store.ThemeDark
	}
	if IsJSONOutput() {
		fmt.Fprintf(w, "{\"theme\": %q}\n", theme)
	} else {
		fmt.Fprintln(w, theme)
	}
	return exitOK
}
