// ABOUTME: Logout command for the crudadmin CLI
// ABOUTME: Ends the remote session when possible and always clears the local one

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runLogout(ctx, os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session. A failed remote logout is not an error.
func runLogout(ctx context.Context, w io.Writer) int {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	s.auth.Logout(ctx)

	if IsJSONOutput() {
		fmt.Fprintln(w, `{"signed_out": true}`)
	} else {
		fmt.Fprintln(w, "Signed out")
	}
	return exitOK
}
