package cmd

import (
	"context"
	"fmt"

	"github.com/buildmaster/cli/internal/api"
	"github.com/buildmaster/cli/internal/build"
	"github.com/buildmaster/cli/internal/catalog"
	"github.com/buildmaster/cli/internal/config"
	"github.com/buildmaster/cli/internal/guard"
	"github.com/buildmaster/cli/internal/output"
	"github.com/buildmaster/cli/internal/session"
	"github.com/buildmaster/cli/internal/state"
)

// App bundles the wired-up stores and client every command works
// against. It is built once per invocation in the root command's
// PersistentPreRunE.
type App struct {
	Config  *config.Config
	Client  *api.Client
	Records *state.Store
	Session *session.Store
	Build   *build.Store
	Cache   *catalog.Cache
}

// newApp loads configuration, restores persisted state, and wires the
// backend client to the session token.
func newApp(cfg *config.Config) (*App, error) {
	stateDir := cfg.StateDir
	if stateDir == "" {
		var err error
		stateDir, err = config.GetStateDir()
		if err != nil {
			return nil, fmt.Errorf("resolving state directory: %w", err)
		}
	}
	stateDir, err := config.ExpandPath(stateDir)
	if err != nil {
		return nil, fmt.Errorf("expanding state directory: %w", err)
	}

	records, err := state.NewStore(stateDir)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(records)
	if err := sess.Rehydrate(); err != nil {
		output.Warn("could not restore session, starting logged out", "error", err)
	}

	client := api.NewClient(cfg.Server.URL, api.WithToken(sess.Token))

	buildStore := build.NewStore(records, client)
	if err := buildStore.Rehydrate(); err != nil {
		output.Warn("could not restore working build, starting empty", "error", err)
	}

	cache, err := catalog.NewCacheWithSize(cfg.Catalog.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating component cache: %w", err)
	}

	return &App{
		Config:  cfg,
		Client:  client,
		Records: records,
		Session: sess,
		Build:   buildStore,
		Cache:   cache,
	}, nil
}

// RequireAuth gates a command on a live session. The guard gets its
// rehydration grace, then either admits the command or reports where
// the user would have been redirected.
func (a *App) RequireAuth(ctx context.Context, path string) error {
	d := guard.New(a.Session).Resolve(ctx, path)
	if d.Authorized() {
		return nil
	}
	return NewExitError(
		fmt.Errorf("login required for %s, run 'buildmaster login' (would redirect to %s)", path, d.RedirectTo),
		ExitUnauthorized,
	)
}

// RequireAdmin gates a command on an admin session.
func (a *App) RequireAdmin(ctx context.Context, path string) error {
	g := guard.New(a.Session, guard.WithRequirement(func() bool {
		id, ok := a.Session.Current()
		return ok && id.IsAdmin()
	}))
	if g.Resolve(ctx, path).Authorized() {
		return nil
	}
	if a.Session.Authenticated() {
		return NewExitError(fmt.Errorf("%s requires an admin account", path), ExitUnauthorized)
	}
	return NewExitError(
		fmt.Errorf("login required for %s, run 'buildmaster login'", path),
		ExitUnauthorized,
	)
}

// MockMode reports whether the catalog serves the built-in dataset.
func (a *App) MockMode() bool {
	return a.Config.Catalog.Mock
}
