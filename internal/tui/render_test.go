// ABOUTME: Test to verify every screen and overlay renders inside the frame
// ABOUTME: Ensures content doesn't push header/footer off screen

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOverlaysRenderWithFrame(t *testing.T) {
	tests := []struct {
		name   string
		open   func(app *App)
		expect string
	}{
		{"form", func(app *App) { app.openForm(nil) }, "New user"},
		{"detail", func(app *App) {
			app.Update(keyRunes("2"))
			if _, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
				app.Update(cmd())
			}
		}, "Leanne Graham"},
		{"confirm", func(app *App) { u, _ := app.users.Find(1); app.openConfirm(u) }, "Delete Leanne Graham?"},
		{"profile", func(app *App) { app.Update(keyRunes("p")) }, "admin@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := loaded(t, newFakeAPI())
			app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
			tt.open(app)

			if app.overlay == OverlayNone {
				t.Fatal("expected an overlay")
			}
			view := app.View()
			if !strings.Contains(view, tt.expect) {
				t.Errorf("expected %q in view\n%s", tt.expect, view)
			}
			checkFrame(t, view, 119)
		})
	}
}

func TestFooterHintsFollowFocus(t *testing.T) {
	app := loaded(t, newFakeAPI())

	if !strings.Contains(app.renderFooter(), "Switch") {
		t.Error("expected home hints")
	}

	app.Update(keyRunes("2"))
	if !strings.Contains(app.renderFooter(), "Search") {
		t.Error("expected users hints")
	}

	app.Update(keyRunes("/"))
	footer := app.renderFooter()
	if !strings.Contains(footer, "Clear") || strings.Contains(footer, "Delete") {
		t.Errorf("expected search hints only, got %q", footer)
	}
}

func TestGalleryLoadingWhileListing(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), true)
	app.loadUsers()
	if !strings.Contains(app.gallery.View(), "Loading") {
		t.Error("expected gallery loading state while the list is in flight")
	}
}
