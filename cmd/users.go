// ABOUTME: Users commands for the crudadmin CLI: list and get
// ABOUTME: Lists with search and pagination, fetches several users concurrently

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/users"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentGets bounds parallel requests for users get
const maxConcurrentGets = 4

var (
	listSearch string
	listPage   int
	listAll    bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user records",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, 8 per page",
	Long: `List user records in pages of 8, optionally filtered by a search term matched
against name, email and username.

Example:
  crudadmin users list --search leanne --page 1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runUsersList(ctx, os.Stdout, listSearch, listPage, listAll))
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Show one or more users",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		exitWith(runUsersGet(ctx, os.Stdout, args))
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd)

	usersListCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name, email or username")
	usersListCmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-based)")
	usersListCmd.Flags().BoolVar(&listAll, "all", false, "Print every matching user instead of one page")
}

// toastWriter keeps status lines out of JSON output
func toastWriter(w io.Writer) io.Writer {
	if IsJSONOutput() {
		return os.Stderr
	}
	return w
}

// listResult is one page of a filtered listing
type listResult struct {
	Users []models.UserRecord `json:"users"`
	Page  int                 `json:"page"`
	Pages int                 `json:"pages"`
	Total int                 `json:"total"`
}

// runUsersList loads the collection and prints one page of it
func runUsersList(ctx context.Context, w io.Writer, search string, page int, all bool) int {
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

	result := pageOf(users.Filter(m.Users(), search), page, all)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUsersJSON(result))
	} else {
		fmt.Fprintln(w, formatUsersHuman(result))
	}
	return exitOK
}

// pageOf slices filtered records the same way the console table does
func pageOf(filtered []models.UserRecord, page int, all bool) listResult {
	if all {
		return listResult{Users: filtered, Page: 1, Pages: 1, Total: len(filtered)}
	}
	pages := users.PageCount(len(filtered), users.PageSize)
	page = min(max(page, 1), pages)
	return listResult{
		Users: users.Paginate(filtered, page, users.PageSize),
		Page:  page,
		Pages: pages,
		Total: len(filtered),
	}
}

// runUsersGet fetches each id concurrently and prints them in argument order
func runUsersGet(ctx context.Context, w io.Writer, args []string) int {
	ids := make([]int, len(args))
	for i, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id <= 0 {
			fmt.Fprintf(w, "Error: invalid user id %q\n", a)
			return exitError
		}
		ids[i] = id
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	m := users.New(s.client, printNotifier{toastWriter(w)})
	records := make([]models.UserRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)
	for i, id := range ids {
		g.Go(func() error {
			u, err := m.Get(gctx, id)
			if err != nil {
				return fmt.Errorf("user %d: %w", id, err)
			}
			records[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitFailed
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Fprintln(w, string(data))
		return exitOK
	}
	for i, u := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, formatUserHuman(u))
	}
	return exitOK
}

// formatUsersHuman renders a page as a table with a page footer
func formatUsersHuman(r listResult) string {
	if r.Total == 0 {
		return "No users found."
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "USERNAME", "EMAIL", "COMPANY", "CITY")
	for _, u := range r.Users {
		t.Row(strconv.Itoa(u.ID), u.Name, u.Username, u.Email, u.Company.Name, u.Address.City)
	}

	return fmt.Sprintf("%s\nPage %d of %d (%d users)", t.String(), r.Page, r.Pages, r.Total)
}

// formatUsersJSON formats a page as JSON
func formatUsersJSON(r listResult) string {
	if r.Users == nil {
		r.Users = []models.UserRecord{}
	}
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}

// formatUserHuman renders every field of one record
func formatUserHuman(u models.UserRecord) string {
	lines := []string{
		fmt.Sprintf("ID:        %d", u.ID),
		fmt.Sprintf("Name:      %s", u.Name),
		fmt.Sprintf("Username:  %s", u.Username),
		fmt.Sprintf("Email:     %s", u.Email),
		fmt.Sprintf("Phone:     %s", u.Phone),
		fmt.Sprintf("Website:   %s", u.Website),
		fmt.Sprintf("Address:   %s", formatAddress(u.Address)),
		fmt.Sprintf("Company:   %s", u.Company.Name),
	}
	if u.Company.CatchPhrase != "" {
		lines = append(lines, fmt.Sprintf("           %q", u.Company.CatchPhrase))
	}
	return strings.Join(lines, "\n")
}

func formatAddress(a models.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Suite, a.City, a.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
