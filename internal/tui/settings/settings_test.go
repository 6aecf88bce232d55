// ABOUTME: Tests for the settings screen
// ABOUTME: Validates theme options, session rows and token expiry rendering

package settings

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mossaabs03254/My-CRUd-App/internal/auth"
	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/store"
)

func TestThemeOptions(t *testing.T) {
	if len(themeOptions) != 2 {
		t.Fatalf("expected 2 theme options, got %d", len(themeOptions))
	}
	if themeOptions[0].value != store.ThemeDark || themeOptions[1].value != store.ThemeLight {
		t.Errorf("unexpected option values %+v", themeOptions)
	}
}

func TestNewSelectsCurrentTheme(t *testing.T) {
	if s := New(true); s.theme != store.ThemeDark {
		t.Errorf("expected dark, got %s", s.theme)
	}
	if s := New(false); s.theme != store.ThemeLight {
		t.Errorf("expected light, got %s", s.theme)
	}

	s := New(true)
	s.SyncTheme(false)
	if s.theme != store.ThemeLight {
		t.Errorf("expected sync to light, got %s", s.theme)
	}
}

func TestSessionRows(t *testing.T) {
	s := New(true)
	s.Init()
	s.SetWidth(80)
	s.SetInfo(Info{
		APIURL:   "http://localhost:5000",
		State:    "authenticated",
		Session:  models.LoggedIn(models.Profile{Name: "Admin", Email: "admin@example.com", Role: "admin"}),
		TokenErr: auth.ErrOpaqueToken,
	})
	view := s.View()

	for _, expected := range []string{"Settings", "Theme", "http://localhost:5000", "authenticated", "admin@example.com", "opaque"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestTokenRendering(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		info     Info
		expected []string
	}{
		{
			name:     "no token",
			info:     Info{TokenErr: errors.New("no token")},
			expected: []string{"No token stored"},
		},
		{
			name:     "no expiry",
			info:     Info{Token: auth.TokenInfo{Subject: "1"}},
			expected: []string{"never expires"},
		},
		{
			name: "half used",
			info: Info{Token: auth.TokenInfo{
				IssuedAt:  now.Add(-time.Hour),
				ExpiresAt: now.Add(time.Hour),
			}},
			expected: []string{"Token lifetime", "50%", "Expires in 1h0m0s"},
		},
		{
			name: "near expiry",
			info: Info{Token: auth.TokenInfo{
				IssuedAt:  now.Add(-time.Hour),
				ExpiresAt: now.Add(2 * time.Minute),
			}},
			expected: []string{"Expires soon"},
		},
		{
			name:     "expired",
			info:     Info{Token: auth.TokenInfo{ExpiresAt: now.Add(-time.Minute)}},
			expected: []string{"Expired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(true)
			tt.info.Now = now
			s.SetInfo(tt.info)
			out := s.renderToken()
			for _, expected := range tt.expected {
				if !strings.Contains(out, expected) {
					t.Errorf("expected %q in\n%s", expected, out)
				}
			}
		})
	}
}
