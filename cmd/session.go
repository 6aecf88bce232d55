// ABOUTME: Shared wiring for subcommands: config, logging, store, client and auth
// ABOUTME: Also provides the signal-aware context and the toast printer used outside the TUI

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mossaabs03254/My-CRUd-App/internal/auth"
	"github.com/Mossaabs03254/My-CRUd-App/internal/client"
	"github.com/Mossaabs03254/My-CRUd-App/internal/config"
	"github.com/Mossaabs03254/My-CRUd-App/internal/logger"
	"github.com/Mossaabs03254/My-CRUd-App/internal/notify"
	"github.com/Mossaabs03254/My-CRUd-App/internal/store"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1 // the service rejected or failed the operation
	exitError  = 2 // configuration, usage or local errors
)

// session bundles everything a subcommand needs to talk to the service
type session struct {
	cfg    *config.Config
	store  *store.Store
	client *client.Client
	auth   *auth.Manager
	logs   io.Closer
}

// openSession loads configuration, starts logging and restores the persisted
// session. Callers must Close it.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logs := logger.Init(logger.Options{
		Dir:    cfg.ConfigDir,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	st, err := store.Open(cfg.ConfigDir)
	if err != nil {
		logs.Close()
		return nil, err
	}

	c := client.New(cfg.APIURL,
		client.WithTokenSource(st),
		client.WithTimeout(cfg.RequestTimeout),
	)

	return &session{
		cfg:    cfg,
		store:  st,
		client: c,
		auth:   auth.New(c, st),
		logs:   logs,
	}, nil
}

func (s *session) Close() {
	s.logs.Close()
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// exitWith terminates the process for non-zero codes
func exitWith(code int) {
	if code != exitOK {
		os.Exit(code)
	}
}

// printNotifier writes toasts as status lines
type printNotifier struct {
	w io.Writer
}

func (p printNotifier) Push(text string, kind notify.Kind) string {
	fmt.Fprintf(p.w, "%s %s\n", toastMarker(kind), text)
	return ""
}

func toastMarker(kind notify.Kind) string {
	switch kind {
	case notify.Success:
		return "✓"
	case notify.Error:
		return "✗"
	default:
		return "•"
	}
}
