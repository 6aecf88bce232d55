// ABOUTME: Refresh command for the crudadmin CLI
// ABOUTME: Exchanges the stored token for a fresh one

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runRefresh(ctx, os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

// runRefresh refreshes the token and returns exit code
func runRefresh(ctx context.Context, w io.Writer) int {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	if !s.auth.IsAuthenticated() {
		fmt.Fprintln(w, "Not signed in. Run 'crudadmin login' first.")
		return exitFailed
	}

	if err := s.auth.Refresh(ctx); err != nil {
		fmt.Fprintf(w, "Refresh failed: %v\n", err)
		return exitFailed
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, `{"refreshed": true}`)
	} else {
		fmt.Fprintln(w, "Token refreshed")
	}
	return exitOK
}
