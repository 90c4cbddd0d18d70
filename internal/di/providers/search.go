package providers

import (
	"github.com/samber/do/v2"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/logger"
	"github.com/streamlens/streamlens-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve index built from the catalog.
// The index follows the store: every reload swaps in a fresh index
// built from the new snapshot.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*catalog.Store](i)

	index, err := search.New(log.Logger)
	if err != nil {
		return nil, err
	}

	if err := index.Rebuild(store.Snapshot().Titles); err != nil {
		return nil, err
	}

	store.OnReload(func(snap *catalog.Snapshot) {
		if err := index.Rebuild(snap.Titles); err != nil {
			log.Error("Search reindex after reload failed", "error", err)
		}
	})

	count, _ := index.Count()
	log.Info("Search index initialized", "documents", count)

	return &SearchIndexHandle{Index: index}, nil
}
