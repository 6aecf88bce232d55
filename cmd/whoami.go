// ABOUTME: Whoami command for the crudadmin CLI
// ABOUTME: Shows the stored session, token expiry and optionally the service's view of the operator

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/spf13/cobra"
)

var whoamiRemote bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in operator",
	Long: `Display the stored session and token expiry.

With --remote the profile is fetched from the service (/auth/me, falling back to /users/me).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runWhoami(ctx, os.Stdout, whoamiRemote))
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiRemote, "remote", false, "Fetch the profile from the service")
}

// whoamiResult is the JSON shape of whoami output
type whoamiResult struct {
	Profile      *models.Profile `json:"profile,omitempty"`
	Source       string          `json:"source"`
	Service      string          `json:"service"`
	Subject      string          `json:"subject,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	NeedsRefresh bool            `json:"needs_refresh"`
}

// runWhoami prints the session and returns exit code
func runWhoami(ctx context.Context, w io.Writer, remote bool) int {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	if !s.auth.IsAuthenticated() && !s.auth.CurrentSession().IsLoggedIn {
		fmt.Fprintln(w, "Not signed in. Run 'crudadmin login' first.")
		return exitFailed
	}

	result := whoamiResult{Source: "stored", Service: s.cfg.APIURL}
	if remote {
		p, err := s.auth.Profile(ctx)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitFailed
		}
		result.Profile = &p
		result.Source = "remote"
	} else if sess := s.auth.CurrentSession(); sess.User != nil {
		result.Profile = sess.User
	}

	if info, err := s.auth.TokenInfo(); err == nil {
		result.Subject = info.Subject
		if !info.ExpiresAt.IsZero() {
			exp := info.ExpiresAt
			result.ExpiresAt = &exp
		}
		result.NeedsRefresh = s.auth.NeedsRefresh()
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(result))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(result, time.Now()))
	}
	return exitOK
}

// formatWhoamiHuman formats the session for human readability
func formatWhoamiHuman(r whoamiResult, now time.Time) string {
	var b strings.Builder
	if r.Profile != nil {
		fmt.Fprintf(&b, "Name:    %s\n", r.Profile.Name)
		fmt.Fprintf(&b, "Email:   %s\n", r.Profile.Email)
		fmt.Fprintf(&b, "Role:    %s\n", r.Profile.Role)
	} else {
		b.WriteString("Profile: (none stored)\n")
	}
	fmt.Fprintf(&b, "Source:  %s\n", r.Source)
	if r.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", r.Service)
	}

	switch {
	case r.ExpiresAt == nil:
		b.WriteString("Token:   no expiry")
	case !now.Before(*r.ExpiresAt):
		fmt.Fprintf(&b, "Token:   expired %s", r.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(&b, "Token:   expires in %s", r.ExpiresAt.Sub(now).Round(time.Second))
		if r.NeedsRefresh {
			b.WriteString(" (run 'crudadmin refresh')")
		}
	}
	return b.String()
}

// formatWhoamiJSON formats the session as JSON
func formatWhoamiJSON(r whoamiResult) string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}
