// ABOUTME: Users commands for the crudadmin CLI: create, update and delete
// ABOUTME: Builds partial records from flags so only the fields given are sent

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/users"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// userFlags holds the editable fields of a user record
type userFlags struct {
	name, username, email, phone, website string
	street, suite, city, zipcode         string
	company, catchPhrase, bs             string
}

func (f *userFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Full name")
	fs.StringVar(&f.username, "username", "", "Username")
	fs.StringVar(&f.email, "email", "", "Email address")
	fs.StringVar(&f.phone, "phone", "", "Phone number")
	fs.StringVar(&f.website, "website", "", "Website")
	fs.StringVar(&f.street, "street", "", "Street")
	fs.StringVar(&f.suite, "suite", "", "Suite")
	fs.StringVar(&f.city, "city", "", "City")
	fs.StringVar(&f.zipcode, "zipcode", "", "Zip code")
	fs.StringVar(&f.company, "company", "", "Company name")
	fs.StringVar(&f.catchPhrase, "catch-phrase", "", "Company catch phrase")
	fs.StringVar(&f.bs, "bs", "", "Company bs")
}

// patch returns the fields that were set on the command line. Address and
// company are whole values on the wire, so changed sub-fields are overlaid on
// base to avoid wiping the ones not given.
func (f *userFlags) patch(fs *pflag.FlagSet, base models.UserRecord) models.UserPatch {
	var p models.UserPatch
	set := func(flag, value string) *string {
		if fs.Changed(flag) {
			return models.String(value)
		}
		return nil
	}

	p.Name = set("name", f.name)
	p.Username = set("username", f.username)
	p.Email = set("email", f.email)
	p.Phone = set("phone", f.phone)
	p.Website = set("website", f.website)

	if anyChanged(fs, "street", "suite", "city", "zipcode") {
		addr := base.Address
		overlay(fs, "street", f.street, &addr.Street)
		overlay(fs, "suite", f.suite, &addr.Suite)
		overlay(fs, "city", f.city, &addr.City)
		overlay(fs, "zipcode", f.zipcode, &addr.Zipcode)
		p.Address = &addr
	}
	if anyChanged(fs, "company", "catch-phrase", "bs") {
		company := base.Company
		overlay(fs, "company", f.company, &company.Name)
		overlay(fs, "catch-phrase", f.catchPhrase, &company.CatchPhrase)
		overlay(fs, "bs", f.bs, &company.BS)
		p.Company = &company
	}
	return p
}

func anyChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, n := range names {
		if fs.Changed(n) {
			return true
		}
	}
	return false
}

func overlay(fs *pflag.FlagSet, flag, value string, dst *string) {
	if fs.Changed(flag) {
		*dst = value
	}
}

var (
	createFlags userFlags
	updateFlags userFlags
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Create a user from the given fields. The collection is loaded first so the new
user is numbered after the highest existing id, as in the console.

Example:
  crudadmin users create --name "Ada Lovelace" --email ada@example.com --company "Analytical Engines"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runUsersCreate(ctx, os.Stdout, createFlags.patch(cmd.Flags(), models.UserRecord{})))
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runUsersUpdate(ctx, os.Stdout, args[0], &updateFlags, cmd.Flags()))
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runUsersDelete(ctx, os.Stdout, args[0]))
	},
}

func init() {
	usersCmd.AddCommand(usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	createFlags.register(usersCreateCmd.Flags())
	updateFlags.register(usersUpdateCmd.Flags())
}

// runUsersCreate creates a user and prints the stored record
func runUsersCreate(ctx context.Context, w io.Writer, patch models.UserPatch) int {
	if patch.IsEmpty() {
		fmt.Fprintln(w, "Error: give at least one field, e.g. --name")
		return exitError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	m := users.New(s.client, printNotifier{toastWriter(w)})
	if !m.List(ctx) {
		return exitFailed
	}
	created, ok := m.Create(ctx, patch)
	if !ok {
		return exitFailed
	}

	printRecord(w, created)
	return exitOK
}

// runUsersUpdate sends only the changed fields and prints the merged record
func runUsersUpdate(ctx context.Context, w io.Writer, rawID string, f *userFlags, fs *pflag.FlagSet) int {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	m := users.New(s.client, printNotifier{toastWriter(w)})
	current, err := m.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: user %d: %v\n", id, err)
		return exitFailed
	}

	patch := f.patch(fs, current)
	if patch.IsEmpty() {
		fmt.Fprintln(w, "Error: nothing to update, give at least one field")
		return exitError
	}
	if !m.Update(ctx, id, patch) {
		return exitFailed
	}

	printRecord(w, patch.Apply(current))
	return exitOK
}

// runUsersDelete removes a user and returns exit code
func runUsersDelete(ctx context.Context, w io.Writer, rawID string) int {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	m := users.New(s.client, printNotifier{toastWriter(w)})
	if !m.Remove(ctx, id) {
		return exitFailed
	}
	if IsJSONOutput() {
		fmt.Fprintf(w, "{\"deleted\": %d}\n", id)
	}
	return exitOK
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}

func printRecord(w io.Writer, u models.UserRecord) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(u, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintln(w, formatUserHuman(u))
}
