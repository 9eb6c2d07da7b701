package app

import (
	"context"
	"fmt"

	"github.com/partmart/partmart/internal/api"
	"github.com/partmart/partmart/internal/config"
	"github.com/partmart/partmart/internal/shell"
	"github.com/partmart/partmart/internal/storage"
	"github.com/partmart/partmart/internal/ui"
)

// Options configure the PartMart application.
type Options struct {
	ConfigPath string
	Page       string // deep-linked page; empty uses the configured default
	Locale     string // overrides the configured locale when set
}

// Run boots the PartMart TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := storage.NewFileStore(cfg.StateDir)

	// The gateway reads the bearer token lazily so logins and logouts take
	// effect without rebuilding the client.
	client, err := api.NewClient(cfg.APIBase, func() string {
		var token string
		storage.ReadJSON(store, storage.KeyToken, &token)
		return token
	})
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}

	scroll := &ui.ScrollFlag{}
	sh := shell.New(shell.Options{
		Context:     ctx,
		Store:       store,
		Gateway:     client,
		Bar:         shell.NewMemBar(opts.Page),
		Scroller:    scroll,
		DefaultPage: cfg.DefaultPage,
	})

	// Restore before the first frame so the route guard never judges a
	// protected deep link against an unchecked session.
	initial := sh.RestoreSession()

	locale := opts.Locale
	if locale == "" {
		if !storage.ReadJSON(store, storage.KeyLocale, &locale) {
			locale = cfg.Locale
		}
	}

	return ui.Run(ui.Options{
		Context:     ctx,
		Shell:       sh,
		Store:       store,
		Scroll:      scroll,
		Locale:      locale,
		InitialCmds: initial,
	})
}
