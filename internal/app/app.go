package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/storedash/internal/api"
	"github.com/five82/storedash/internal/config"
	"github.com/five82/storedash/internal/prefs"
	"github.com/five82/storedash/internal/state"
	"github.com/five82/storedash/internal/ui"
)

// Options configure the storedash application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/storedash/prefs.toml
	StoreID    int64  // zero falls back to prefs, then config
	Year       int    // zero uses the current year
	Month      int    // zero uses the current month

	// ServerLowStock makes Report also load the server-filtered /less10 list.
	ServerLowStock bool
}

type env struct {
	cfg     config.Config
	prefs   prefs.Prefs
	logger  *slog.Logger
	session *state.Session
	closer  io.Closer
}

func setup(opts Options) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, closer, err := NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs ignored", slog.Any("error", err))
	}
	client, err := api.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	storeID := opts.StoreID
	if storeID == 0 {
		storeID = userPrefs.StoreID
	}
	if storeID == 0 {
		storeID = cfg.StoreID
	}

	session := state.NewSession(client, logger, state.Options{StoreID: storeID, Years: cfg.Years})
	session.SetPeriod(opts.Year, opts.Month)
	session.SelectStore(storeID)

	logger.Info("session started",
		slog.String("api", client.BaseURL()),
		slog.Int64("store", storeID))

	return &env{cfg: cfg, prefs: userPrefs, logger: logger, session: session, closer: closer}, nil
}

// Run boots the dashboard TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.closer.Close() }()

	restoreSection(e.session, e.prefs)

	// The store list feeds store cycling and the header.
	e.session.Refresh(ctx, state.DomainStores)

	StartRefresher(ctx, e.session, e.cfg.RefreshEvery, e.logger)

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   e.session,
		Prefs:     e.prefs,
		PrefsPath: opts.PrefsPath,
		LogFile:   e.cfg.LogFile,
	})
}

// restoreSection reopens the section saved in p; unknown names keep the
// session default.
func restoreSection(session *state.Session, p prefs.Prefs) {
	if d, ok := state.ParseDomain(p.Section); ok {
		session.SetActive(d)
	}
}

// Report refreshes one domain once and writes it to w.
func Report(ctx context.Context, opts Options, domain state.Domain, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.closer.Close() }()

	if domain != state.DomainStores {
		e.session.Refresh(ctx, state.DomainStores)
	}
	e.session.Refresh(ctx, domain)
	if opts.ServerLowStock && !e.session.RefreshServerLowStock(ctx, domain) {
		return fmt.Errorf("section %s has no server low-stock list", domain)
	}

	snap := e.session.Snapshot()
	if snap.Health.LastError != nil {
		return fmt.Errorf("api unreachable: %w", snap.Health.LastError)
	}
	return ui.RenderReport(w, snap, domain, e.prefs.Theme)
}
