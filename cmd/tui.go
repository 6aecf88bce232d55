// ABOUTME: TUI command for the crudadmin CLI
// ABOUTME: Starts the full-screen console; also the root command's default action

package cmd

import (
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(tui.Deps{
		Auth:   s.auth,
		Store:  s.store,
		API:    s.client,
		APIURL: s.cfg.APIURL,
	})
}
