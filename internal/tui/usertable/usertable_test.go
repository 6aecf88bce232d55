package usertable

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func records(n int) []models.UserRecord {
	out := make([]models.UserRecord, n)
	for i := range out {
		out[i] = models.UserRecord{
			ID:       i + 1,
			Name:     fmt.Sprintf("User %02d", i+1),
			Username: fmt.Sprintf("user%02d", i+1),
			Email:    fmt.Sprintf("user%02d@example.com", i+1),
		}
	}
	out[2].Name = "Clementine Bauch"
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(tb *Table, s string) {
	for _, r := range s {
		tb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPaging(t *testing.T) {
	tb := New()
	tb.SetUsers(records(20))

	if tb.Pages() != 3 {
		t.Fatalf("expected 3 pages, got %d", tb.Pages())
	}
	if got := len(tb.Visible()); got != 8 {
		t.Errorf("expected 8 rows on first page, got %d", got)
	}

	tb.Update(key("right"))
	tb.Update(key("right"))
	tb.Update(key("right"))
	if tb.Page() != 3 {
		t.Errorf("expected to stop on page 3, got %d", tb.Page())
	}
	if got := len(tb.Visible()); got != 4 {
		t.Errorf("expected 4 rows on last page, got %d", got)
	}

	tb.Update(key("left"))
	if tb.Page() != 2 {
		t.Errorf("expected page 2, got %d", tb.Page())
	}
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	tb := New()
	tb.SetUsers(records(20))
	tb.Update(key("right"))

	tb.Update(key("/"))
	if !tb.Searching() {
		t.Fatal("expected search mode")
	}
	typeText(tb, "clem")

	if tb.Page() != 1 {
		t.Errorf("expected page reset to 1, got %d", tb.Page())
	}
	visible := tb.Visible()
	if len(visible) != 1 || visible[0].ID != 3 {
		t.Fatalf("expected only user 3, got %+v", visible)
	}

	tb.Update(key("enter"))
	if tb.Searching() {
		t.Error("expected enter to leave search mode")
	}
	if tb.Term() != "clem" {
		t.Errorf("expected term kept, got %q", tb.Term())
	}
}

func TestSearchEscClears(t *testing.T) {
	tb := New()
	tb.SetUsers(records(5))
	tb.Update(key("/"))
	typeText(tb, "zzz")
	if len(tb.Visible()) != 0 {
		t.Fatal("expected no matches")
	}
	if !strings.Contains(tb.View(), "No users match") {
		t.Error("expected empty search message")
	}

	tb.Update(key("esc"))
	if tb.Term() != "" || len(tb.Visible()) != 5 {
		t.Errorf("expected cleared search, got term %q and %d rows", tb.Term(), len(tb.Visible()))
	}
}

func TestSearchKeysDoNotTriggerActions(t *testing.T) {
	tb := New()
	tb.SetUsers(records(3))
	tb.Update(key("/"))
	_, cmd := tb.Update(key("d"))
	if cmd != nil {
		if _, ok := cmd().(DeleteMsg); ok {
			t.Error("expected typing d in search not to delete")
		}
	}
}

func TestActionsCarrySelectedID(t *testing.T) {
	tb := New()
	tb.SetUsers(records(3))
	tb.Update(key("down"))

	cases := []struct {
		key  string
		want tea.Msg
	}{
		{"enter", ViewMsg{ID: 2}},
		{"e", EditMsg{ID: 2}},
		{"d", DeleteMsg{ID: 2}},
		{"n", AddMsg{}},
	}
	for _, tc := range cases {
		_, cmd := tb.Update(key(tc.key))
		if cmd == nil {
			t.Errorf("%s: expected a command", tc.key)
			continue
		}
		if got := cmd(); got != tc.want {
			t.Errorf("%s: expected %#v, got %#v", tc.key, tc.want, got)
		}
	}
}

func TestFirstRowSelectedAfterLoad(t *testing.T) {
	tb := New()
	tb.SetUsers(records(3))

	sel, ok := tb.Selected()
	if !ok || sel.ID != 1 {
		t.Fatalf("expected first user selected, got %+v (ok=%v)", sel, ok)
	}
	_, cmd := tb.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected enter to view the first user")
	}
	if got := cmd(); got != (ViewMsg{ID: 1}) {
		t.Errorf("expected ViewMsg for user 1, got %#v", got)
	}

	tb.Update(key("down"))
	if sel, _ := tb.Selected(); sel.ID != 2 {
		t.Errorf("expected one step down to select user 2, got %d", sel.ID)
	}
}

func TestActionsOnEmptyTable(t *testing.T) {
	tb := New()
	if _, cmd := tb.Update(key("e")); cmd != nil {
		t.Error("expected no command without a selection")
	}
	if !strings.Contains(tb.View(), "No users yet") {
		t.Error("expected empty table message")
	}
}

func TestSetUsersClampsPage(t *testing.T) {
	tb := New()
	tb.SetUsers(records(20))
	tb.Update(key("right"))
	tb.Update(key("right"))

	tb.SetUsers(records(9))
	if tb.Page() != 2 || tb.Pages() != 2 {
		t.Errorf("expected page 2 of 2, got %d of %d", tb.Page(), tb.Pages())
	}
	if sel, ok := tb.Selected(); !ok || sel.ID != 9 {
		t.Errorf("expected cursor clamped to user 9, got %+v", sel)
	}
}
