// ABOUTME: Tests for badge, progress bar and metric block widgets
// ABOUTME: Checks content and widths rather than exact escape sequences

package widgets

import (
	"strings"
	"testing"

	"github.com/Mossaabs03254/My-CRUd-App/internal/notify"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

func TestLevelForKind(t *testing.T) {
	tests := []struct {
		kind notify.Kind
		want StatusLevel
	}{
		{notify.Success, StatusOK},
		{notify.Error, StatusCritical},
		{notify.Info, StatusInfo},
	}
	for _, tc := range tests {
		if got := LevelForKind(tc.kind); got != tc.want {
			t.Errorf("LevelForKind(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestToastContainsText(t *testing.T) {
	out := Toast("User created successfully", notify.Success, 40)
	if !strings.Contains(out, "User created successfully") {
		t.Errorf("expected toast text, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("expected a single line at width 40, got %q", out)
	}
}

func TestRoleBadge(t *testing.T) {
	if !strings.Contains(RoleBadge(""), "guest") {
		t.Error("expected empty role to render as guest")
	}
	if !strings.Contains(RoleBadge("Super Administrator"), "Super Administrator") {
		t.Error("expected role text in badge")
	}
}

func TestProgressBarWidth(t *testing.T) {
	for _, pct := range []float64{-5, 0, 50, 85, 100, 150} {
		bar := ProgressBar(pct, ProgressBarConfig{Width: 10, WarnThreshold: 80, CritThreshold: 95})
		if w := lipgloss.Width(bar); w != 12 {
			t.Errorf("percent %.0f: expected width 12 (10 + brackets), got %d", pct, w)
		}
	}
}

func TestProgressBarFill(t *testing.T) {
	bar := ProgressBar(50, ProgressBarConfig{Width: 10, WarnThreshold: 80, CritThreshold: 95})
	if got := strings.Count(bar, "█"); got != 5 {
		t.Errorf("expected 5 filled cells, got %d", got)
	}
}

func TestProgressBarWithLabel(t *testing.T) {
	out := ProgressBarWithLabel(96, DefaultProgressBarConfig())
	if !strings.Contains(out, "96%") {
		t.Errorf("expected percentage label, got %q", out)
	}
}

func TestMetricBlockWidth(t *testing.T) {
	block := CountBlock(icons.Users, "Users", 10, "in collection", 22)
	for i, line := range strings.Split(block, "\n") {
		if w := lipgloss.Width(line); w != 22 {
			t.Errorf("line %d: expected width 22, got %d: %q", i, w, line)
		}
	}
	if !strings.Contains(block, "10") {
		t.Error("expected count in block")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged, got %q", got)
	}
	got := truncate("Romaguera-Jacobson", 8)
	if lipgloss.Width(got) > 8 || !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsized string within 8 cells, got %q", got)
	}
}
