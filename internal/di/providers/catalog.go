package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/logger"
	"github.com/streamlens/streamlens-server/internal/watcher"
)

// ProvideCatalogStore provides the in-memory catalog loaded from the CSV file.
func ProvideCatalogStore(i do.Injector) (*catalog.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	store, err := catalog.New(cfg.Catalog.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	snap := store.Snapshot()
	log.Info("Catalog loaded", "path", snap.Path, "rows", len(snap.Titles))

	return store, nil
}

// WatcherHandle wraps the catalog file watcher with shutdown capability.
// The wrapped watcher is nil when watching is disabled.
type WatcherHandle struct {
	*watcher.Watcher
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *WatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Stop()
}

// ProvideCatalogWatcher provides the file watcher that reloads the
// catalog when the CSV settles after a change.
func ProvideCatalogWatcher(i do.Injector) (*WatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*catalog.Store](i)

	if !cfg.Catalog.Watch {
		log.Info("Catalog watching disabled")
		return &WatcherHandle{}, nil
	}

	onSettle := func() {
		if err := store.Reload(); err != nil {
			log.Error("Catalog reload failed, keeping previous snapshot", "error", err)
			return
		}
		log.Info("Catalog reloaded", "rows", len(store.Snapshot().Titles))
	}

	w, err := watcher.New(cfg.Catalog.Path, cfg.Catalog.SettleDelay, onSettle, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error("Catalog watcher stopped", "error", err)
		}
	}()

	log.Info("Watching catalog file", "path", cfg.Catalog.Path, "settle_delay", cfg.Catalog.SettleDelay)

	return &WatcherHandle{Watcher: w, cancel: cancel}, nil
}
