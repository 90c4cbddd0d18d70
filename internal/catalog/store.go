package catalog

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/streamlens/streamlens-server/internal/domain"
)

// Snapshot is one fully-loaded, immutable version of the catalog.
// All accessors are read-only; a reload produces a fresh Snapshot rather
// than mutating an existing one, so views handed to callers stay valid.
type Snapshot struct {
	Titles   []domain.Title
	Path     string
	ModTime  time.Time
	LoadedAt time.Time

	byID map[string]int
}

func newSnapshot(titles []domain.Title, path string, modTime time.Time) *Snapshot {
	byID := make(map[string]int, len(titles))
	for i := range titles {
		byID[titles[i].ID] = i
	}
	return &Snapshot{
		Titles:   titles,
		Path:     path,
		ModTime:  modTime,
		LoadedAt: time.Now(),
		byID:     byID,
	}
}

// Title returns the row with the given ID.
func (s *Snapshot) Title(id string) (domain.Title, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Title{}, false
	}
	return s.Titles[i], true
}

// Types returns the distinct content types in file-encounter order.
func (s *Snapshot) Types() []string {
	return distinct(s.Titles, func(t *domain.Title) []string {
		return []string{string(t.Type)}
	}, 0)
}

// Ratings returns the distinct ratings in file-encounter order.
func (s *Snapshot) Ratings() []string {
	return distinct(s.Titles, func(t *domain.Title) []string {
		return []string{t.Rating}
	}, 0)
}

// GenreTokens returns up to limit distinct genre tokens in
// file-encounter order (the order the dashboard dropdown shows them).
func (s *Snapshot) GenreTokens(limit int) []string {
	return distinct(s.Titles, func(t *domain.Title) []string { return t.Genres() }, limit)
}

// CountryTokens returns up to limit distinct country tokens in
// file-encounter order.
func (s *Snapshot) CountryTokens(limit int) []string {
	return distinct(s.Titles, func(t *domain.Title) []string { return t.Countries() }, limit)
}

// YearBounds returns the observed min and max release year.
// ok is false when no row has a parsed release year.
func (s *Snapshot) YearBounds() (lo, hi int, ok bool) {
	for i := range s.Titles {
		y := s.Titles[i].ReleaseYear
		if y == 0 {
			continue
		}
		if !ok || y < lo {
			lo = y
		}
		if !ok || y > hi {
			hi = y
		}
		ok = true
	}
	return lo, hi, ok
}

func distinct(titles []domain.Title, extract func(*domain.Title) []string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range titles {
		for _, tok := range extract(&titles[i]) {
			if tok == "" || seen[tok] {
				continue
			}
			seen[tok] = true
			out = append(out, tok)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

// Store owns the current catalog snapshot. The snapshot is shared
// read-only across requests; Reload swaps in a new one atomically.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	snap     *Snapshot
	onReload []func(*Snapshot)
}

// New creates a store and performs the initial load. A missing or
// unreadable file is fatal here: the server must not come up against an
// empty catalog.
func New(path string, logger *slog.Logger) (*Store, error) {
	st := &Store{path: path, logger: logger}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

// Snapshot returns the current catalog snapshot.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// OnReload registers a callback invoked with each new snapshot after a
// successful reload. Callbacks run synchronously on the reloading
// goroutine; keep them quick or hand off internally.
func (st *Store) OnReload(fn func(*Snapshot)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.onReload = append(st.onReload, fn)
}

// Reload re-parses the catalog file if it changed since the last load.
// The parse is skipped when the file's mtime matches the current
// snapshot, so repeated invocations within a session are free. A failed
// reload keeps the previous snapshot.
func (st *Store) Reload() error {
	info, err := os.Stat(st.path)
	if err == nil {
		st.mu.RLock()
		unchanged := st.snap != nil && st.snap.ModTime.Equal(info.ModTime())
		st.mu.RUnlock()
		if unchanged {
			st.logger.Debug("catalog unchanged, skipping reload", "path", st.path)
			return nil
		}
	}

	if err := st.load(); err != nil {
		st.logger.Error("catalog reload failed, keeping previous snapshot", "path", st.path, "error", err)
		return err
	}

	st.mu.RLock()
	snap := st.snap
	callbacks := st.onReload
	st.mu.RUnlock()

	for _, fn := range callbacks {
		fn(snap)
	}
	return nil
}

func (st *Store) load() error {
	info, err := os.Stat(st.path)
	if err != nil {
		return err
	}

	titles, err := Load(st.path)
	if err != nil {
		return err
	}

	st.mu.Lock()
	st.snap = newSnapshot(titles, st.path, info.ModTime())
	st.mu.Unlock()

	st.logger.Info("catalog loaded", "path", st.path, "rows", len(titles))
	return nil
}
