package service

import (
	"context"
	"errors"
	"time"

	"estate-search/internal/catalog"
	"estate-search/internal/model"
)

// DefaultTopK is the result cap used when the caller does not specify one.
const DefaultTopK = 5

// ErrEmptyCatalog is returned when no listings have been loaded. The engine
// never fabricates data to cover for a missing catalog.
var ErrEmptyCatalog = errors.New("catalog is empty")

// SearchLogger records executed searches. Implementations must be safe for
// concurrent use; logging failures are ignored by the engine.
type SearchLogger interface {
	LogSearch(ctx context.Context, query string, intent *model.QueryIntent, outcome model.Outcome, resultCount int, tookMs int64) error
}

// ReloadFunc fetches raw catalog records from the configured source.
type ReloadFunc func(ctx context.Context) ([]model.RawListing, error)

// SearchService handles search business logic: intent parsing, scoring,
// ordering, and the never-empty fallback policy.
type SearchService struct {
	store      *catalog.Store
	normalizer *catalog.Normalizer
	intent     *IntentParser
	ranker     *Ranker
	reload     ReloadFunc
	logger     SearchLogger
}

// NewSearchService creates a new search service. reload and logger are
// optional; a nil reload disables catalog reloading and a nil logger
// disables search logging.
func NewSearchService(
	store *catalog.Store,
	intentParser *IntentParser,
	ranker *Ranker,
	reload ReloadFunc,
	logger SearchLogger,
) *SearchService {
	return &SearchService{
		store:      store,
		normalizer: catalog.NewNormalizer(),
		intent:     intentParser,
		ranker:     ranker,
		reload:     reload,
		logger:     logger,
	}
}

// Search answers a free-text query against the current catalog snapshot.
//
// The result is never empty for a non-empty catalog, with one documented
// exception: a query with an extracted city hint that matches nothing is a
// confident miss and legitimately returns zero listings. A query with no
// extractable hints at all returns the first topK catalog entries,
// unscored.
func (s *SearchService) Search(ctx context.Context, query string, topK int) (*model.SearchResult, error) {
	startTime := time.Now()

	if topK <= 0 {
		topK = DefaultTopK
	}

	snapshot := s.store.Snapshot()
	if len(snapshot) == 0 {
		return nil, ErrEmptyCatalog
	}

	intent := s.intent.Parse(query)

	var result *model.SearchResult
	switch {
	case !intent.HasHints():
		result = fallbackResult(snapshot, topK)

	default:
		ranked := s.ranker.Rank(snapshot, intent)
		if len(ranked) > topK {
			ranked = ranked[:topK]
		}

		switch {
		case len(ranked) > 0:
			result = &model.SearchResult{
				Listings: ranked,
				Count:    len(ranked),
				Outcome:  model.OutcomeMatched,
			}
		case intent.HasCity():
			// Confident miss: a specified city with no inventory is a
			// true negative, not an interpretation failure.
			result = &model.SearchResult{
				Listings: []model.ScoredListing{},
				Count:    0,
				Outcome:  model.OutcomeCityMiss,
			}
		default:
			result = fallbackResult(snapshot, topK)
		}
	}

	result.Intent = intent
	result.Took = time.Since(startTime).Milliseconds()

	// Log search (non-blocking)
	if s.logger != nil {
		outcome, count, took := result.Outcome, result.Count, result.Took
		go func() {
			_ = s.logger.LogSearch(context.Background(), query, intent, outcome, count, took)
		}()
	}

	return result, nil
}

// GetListing retrieves a single listing from the current snapshot by ID.
func (s *SearchService) GetListing(id int64) (*model.Listing, bool) {
	for _, listing := range s.store.Snapshot() {
		if listing.ID == id {
			return &listing, true
		}
	}
	return nil, false
}

// CatalogSize returns the number of listings currently loaded.
func (s *SearchService) CatalogSize() int {
	return s.store.Len()
}

// Reload fetches raw records from the configured source, normalizes them
// and swaps the catalog snapshot in a single write. Returns the new catalog
// size. A source yielding zero records is rejected and the previous
// snapshot stays in place.
func (s *SearchService) Reload(ctx context.Context) (int, error) {
	if s.reload == nil {
		return 0, errors.New("no catalog source configured for reload")
	}

	raw, err := s.reload(ctx)
	if err != nil {
		return 0, err
	}

	listings := s.normalizer.Normalize(raw)
	if len(listings) == 0 {
		return 0, ErrEmptyCatalog
	}

	s.store.Replace(listings)
	return len(listings), nil
}

// fallbackResult returns the first topK catalog entries in catalog order,
// unscored.
func fallbackResult(snapshot []model.Listing, topK int) *model.SearchResult {
	if topK > len(snapshot) {
		topK = len(snapshot)
	}

	listings := make([]model.ScoredListing, 0, topK)
	for _, listing := range snapshot[:topK] {
		listings = append(listings, model.ScoredListing{Listing: listing})
	}

	return &model.SearchResult{
		Listings: listings,
		Count:    len(listings),
		Outcome:  model.OutcomeFallback,
	}
}
