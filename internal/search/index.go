package search

import (
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/streamlens/streamlens-server/internal/domain"
	apperrors "github.com/streamlens/streamlens-server/internal/errors"
)

// Index wraps an in-memory Bleve index over the current catalog
// snapshot.
//
// Thread safety: all public methods are safe for concurrent use. The
// mutex makes Rebuild an atomic swap, so queries either see the old
// snapshot's rows or the new one's, never a mix.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// batchSize bounds how many rows land in one Bleve batch during a
// rebuild.
const batchSize = 500

// New creates an empty in-memory index. Populate it with Rebuild.
func New(logger *slog.Logger) (*Index, error) {
	idx, err := newMemIndex()
	if err != nil {
		return nil, err
	}
	return &Index{index: idx, logger: logger}, nil
}

func newMemIndex() (bleve.Index, error) {
	indexMapping, err := buildIndexMapping()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "build index mapping")
	}
	idx, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "create search index")
	}
	return idx, nil
}

// Rebuild replaces the index contents with the given rows, in order.
// The old index keeps serving queries until the new one is ready.
func (ix *Index) Rebuild(titles []domain.Title) error {
	next, err := newMemIndex()
	if err != nil {
		return err
	}

	batch := next.NewBatch()
	for row := range titles {
		doc := FromTitle(&titles[row], row)
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return apperrors.Wrapf(err, apperrors.CodeInternal, "index row %d", row)
		}
		if batch.Size() >= batchSize {
			if err := next.Batch(batch); err != nil {
				return apperrors.Wrap(err, apperrors.CodeInternal, "commit index batch")
			}
			batch = next.NewBatch()
		}
	}
	if batch.Size() > 0 {
		if err := next.Batch(batch); err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, "commit index batch")
		}
	}

	ix.mu.Lock()
	old := ix.index
	ix.index = next
	ix.mu.Unlock()

	if err := old.Close(); err != nil {
		ix.logger.Warn("failed to close replaced search index", "error", err)
	}
	ix.logger.Info("rebuilt search index", "rows", len(titles))
	return nil
}

// Count returns the number of indexed rows.
func (ix *Index) Count() (uint64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.index.DocCount()
}

// Close releases the index.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.index.Close()
}
