// ABOUTME: Login command for the crudadmin CLI
// ABOUTME: Signs in with email and password and persists the session for later commands

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Mossaabs03254/My-CRUd-App/internal/auth"
	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string
)

// readPassword prompts on the terminal without echo. Tests replace it.
var readPassword = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal to prompt for a password; use --password")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the users service",
	Long: `Sign in with an email and password. The returned token and profile are kept
in the config directory so later commands and the console stay signed in.

The password is prompted for when --password is not given.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runLogin(ctx, os.Stdout, loginEmail, loginPassword))
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("email")
}

// runLogin signs in and returns exit code
func runLogin(ctx context.Context, w io.Writer, email, password string) int {
	if email == "" {
		fmt.Fprintln(w, "Error: --email is required")
		return exitError
	}
	if password == "" {
		p, err := readPassword()
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitError
		}
		password = p
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	profile, err := s.auth.Login(ctx, email, password)
	if err != nil {
		var loginErr *auth.LoginError
		if errors.As(err, &loginErr) {
			fmt.Fprintf(w, "Login failed: %s\n", loginErr.Message)
			return exitFailed
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatProfileJSON(profile))
	} else {
		fmt.Fprintf(w, "Signed in as %s\n", formatProfileHuman(profile))
	}
	return exitOK
}

// formatProfileHuman renders a one-line profile summary
func formatProfileHuman(p models.Profile) string {
	return fmt.Sprintf("%s <%s> (%s)", p.Name, p.Email, p.Role)
}

// formatProfileJSON formats a profile as JSON
func formatProfileJSON(p models.Profile) string {
	data, _ := json.MarshalIndent(p, "", "  ")
	return string(data)
}
