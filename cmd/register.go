// ABOUTME: Register command for the crudadmin CLI
// ABOUTME: Creates an account from key=value fields; does not sign in

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var registerFields []string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the users service",
	Long: `Send a registration request built from --field key=value pairs.

The service decides which fields it needs. Registration does not sign you in;
run 'crudadmin login' afterwards.

Example:
  crudadmin register --field name="Ada Lovelace" --field email=ada@example.com --field password=secret`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runRegister(ctx, os.Stdout, registerFields))
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringArrayVar(&registerFields, "field", nil, "Registration field as key=value (repeatable)")
}

// parseFields turns key=value pairs into a payload
func parseFields(fields []string) (map[string]any, error) {
	payload := make(map[string]any, len(fields))
	for _, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", f)
		}
		payload[key] = value
	}
	return payload, nil
}

// runRegister sends the registration and returns exit code
func runRegister(ctx context.Context, w io.Writer, fields []string) int {
	payload, err := parseFields(fields)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	if len(payload) == 0 {
		fmt.Fprintln(w, "Error: at least one --field is required")
		return exitError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	resp, err := s.auth.Register(ctx, payload)
	if err != nil {
		fmt.Fprintf(w, "Registration failed: %v\n", err)
		return exitFailed
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"registered": true,
			"user":       resp.User,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, "Registered. Run 'crudadmin login' to sign in.")
	}
	return exitOK
}
