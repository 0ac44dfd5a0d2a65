package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/dori/weezy/internal/config"
	"github.com/dori/weezy/internal/db"
	"github.com/dori/weezy/internal/notify"
)

// ErrAlreadyRunning is returned when another TUI holds the instance lock
var ErrAlreadyRunning = errors.New("another instance of weezy is already running")

// App holds the application state and dependencies
type App struct {
	Config   config.Config
	Log      *zap.Logger
	DB       *db.DB
	Catalog  db.Catalog
	Notifier *notify.Notifier
	lockFile *flock.Flock
}

// Option configures New
type Option func(*options)

type options struct {
	lock bool
}

// WithInstanceLock makes New fail when another instance holds the runtime lock
func WithInstanceLock() Option {
	return func(o *options) { o.lock = true }
}

// New loads the catalog and wires the notifier. A nil logger is treated as
// a no-op logger.
func New(cfg config.Config, log *zap.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := &App{
		Config:   cfg,
		Log:      log,
		Notifier: notify.NewNotifier(cfg.Notifications, log),
	}

	if o.lock {
		if err := os.MkdirAll(cfg.RuntimeDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create runtime directory: %w", err)
		}
		if err := app.acquireLock(); err != nil {
			return nil, err
		}
	}

	database, err := db.Open(log)
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	app.DB = database

	catalog, err := database.Load()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	app.Catalog = catalog

	log.Debug("app ready",
		zap.String("workspace", cfg.WorkspaceName),
		zap.Int("tasks", len(catalog.Tasks)),
		zap.Bool("locked", app.lockFile != nil))
	return app, nil
}

// LockPath returns the instance lock file inside the runtime dir
func LockPath(runtimeDir string) string {
	return filepath.Join(runtimeDir, "weezy.lock")
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lock := flock.New(LockPath(a.Config.RuntimeDir))

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return ErrAlreadyRunning
	}

	a.lockFile = lock
	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
		a.lockFile = nil
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close catalog: %w", err))
		}
		a.DB = nil
	}

	a.releaseLock()
	_ = a.Log.Sync()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
