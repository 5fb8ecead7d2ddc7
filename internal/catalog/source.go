package catalog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/model"
)

// DefaultPageSize is the number of gift themes served per page
const DefaultPageSize = 20

// Source serves catalog state the way the chat theme backend does: every
// emoticon theme at once, gift themes in pages. It is safe for concurrent
// use; the watcher reloads it from its own goroutine.
type Source struct {
	store    *Store
	pageSize int
	logger   *zap.Logger

	mu      sync.Mutex
	catalog model.Catalog
	pages   int
}

// NewSource creates a source over store. pageSize <= 0 uses DefaultPageSize.
func NewSource(store *Store, pageSize int, logger *zap.Logger) *Source {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		store:    store,
		pageSize: pageSize,
		logger:   logger,
		pages:    1,
	}
}

// Reload reads the catalog file again. Already loaded pages stay loaded.
func (s *Source) Reload() error {
	c, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = *c
	s.mu.Unlock()

	s.logger.Debug("catalog loaded",
		zap.String("path", s.store.FilePath),
		zap.Int("themes", len(c.Themes)),
		zap.Int("gifts", len(c.Gifts)),
		zap.Int("peers", len(c.Peers)))
	return nil
}

// LoadMore loads the next gift page. It reports false when every gift was
// already served.
func (s *Source) LoadMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadedLocked() >= len(s.catalog.Gifts) {
		return false
	}
	s.pages++
	return true
}

// Snapshot returns the current state: loaded gift pages, every emoticon
// theme and the peer table
func (s *Source) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.loadedLocked()
	gifts := make([]model.GiftTheme, loaded)
	copy(gifts, s.catalog.Gifts[:loaded])

	themes := make([]model.EmoticonTheme, len(s.catalog.Themes))
	copy(themes, s.catalog.Themes)

	peers := make(map[string]model.Peer, len(s.catalog.Peers))
	for _, p := range s.catalog.Peers {
		peers[p.ID] = p
	}

	return model.Snapshot{
		Themes: themes,
		Gifts: model.GiftThemesState{
			Themes: gifts,
			DataState: model.DataState{
				CanLoadMore: loaded < len(s.catalog.Gifts),
			},
		},
		Peers: peers,
	}
}

// FindGift returns the gift theme with id from the whole catalog, loaded or
// not
func (s *Source) FindGift(id string) (model.GiftTheme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.catalog.Gifts {
		if g.ID == id {
			return g, true
		}
	}
	return model.GiftTheme{}, false
}

func (s *Source) loadedLocked() int {
	return min(s.pages*s.pageSize, len(s.catalog.Gifts))
}
