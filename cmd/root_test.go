// ABOUTME: Tests for the root command and global flag handling
// ABOUTME: Also holds the fake users service shared by the subcommand tests

package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
)

// fakeService is a scripted users service keyed by "METHOD /path"
type fakeService struct {
	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []string
	auth     map[string]string
}

func (f *fakeService) on(key string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}
}

func (f *fakeService) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == key {
			return true
		}
	}
	return false
}

func (f *fakeService) authFor(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[key]
}

// withService points the global flags at a fresh fake service and an empty
// config dir, restoring them afterwards
func withService(t *testing.T) *fakeService {
	t.Helper()
	svc := &fakeService{routes: make(map[string]http.HandlerFunc), auth: make(map[string]string)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		svc.mu.Lock()
		svc.requests = append(svc.requests, key)
		svc.auth[key] = r.Header.Get("Authorization")
		handler, ok := svc.routes[key]
		svc.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	apiURL = server.URL
	configDir = t.TempDir()
	jsonOutput = false
	t.Cleanup(func() {
		apiURL = ""
		configDir = ""
		jsonOutput = false
	})
	return svc
}

func TestLoadConfig_DefaultAPIURL(t *testing.T) {
	t.Setenv("CRUDADMIN_API_URL", "")
	apiURL = "" // Reset flag

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	url := cfg.APIURL
	if url != "http://localhost:5000" {
		t.Errorf("expected default URL http://localhost:5000, got %s", url)
	}
}

func TestLoadConfig_APIURLFromEnv(t *testing.T) {
	t.Setenv("CRUDADMIN_API_URL", "http://users.example.com")
	apiURL = "" // Reset flag

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	url := cfg.APIURL
	if url != "http://users.example.com" {
		t.Errorf("expected http://users.example.com, got %s", url)
	}
}

func TestLoadConfig_APIURLFlagOverridesEnv(t *testing.T) {
	t.Setenv("CRUDADMIN_API_URL", "http://users.example.com")
	apiURL = "http://flag-override.example.com"
	defer func() { apiURL = "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	url := cfg.APIURL
	if url != "http://flag-override.example.com" {
		t.Errorf("expected flag to override env, got %s", url)
	}
}

func TestLoadConfig_ConfigDirFlag(t *testing.T) {
	dir := t.TempDir()
	configDir = dir
	defer func() { configDir = "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigDir != dir {
		t.Errorf("expected config dir %s, got %s", dir, cfg.ConfigDir)
	}
}

func TestJSONOutput(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	if !IsJSONOutput() {
		t.Error("expected IsJSONOutput to return true")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"login", "logout", "whoami", "refresh", "register", "users", "theme", "tui"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestMain(m *testing.M) {
	// Keep a developer's own environment out of the tests
	os.Unsetenv("CRUDADMIN_CONFIG_DIR")
	os.Unsetenv("CRUDADMIN_REQUEST_TIMEOUT")
	os.Exit(m.Run())
}
