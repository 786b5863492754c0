package model

// Outcome classifies how a search result was produced. The caller uses it
// to phrase its reply: a confident city miss warrants "no properties in
// that city", while a fallback warrants "couldn't read your query, here are
// some picks".
type Outcome string

const (
	// OutcomeMatched means at least one listing matched the extracted hints.
	OutcomeMatched Outcome = "matched"
	// OutcomeFallback means no structured hint was extracted; the result is
	// the first topK catalog entries, unscored.
	OutcomeFallback Outcome = "fallback"
	// OutcomeCityMiss means a city hint was extracted but no listing
	// matched. This is the one case where an empty result is legitimate.
	OutcomeCityMiss Outcome = "city_miss"
	// OutcomeEmptyCatalog means no listings are loaded. Surfaced by the
	// HTTP layer; the engine reports it as an error, never as fabricated
	// results.
	OutcomeEmptyCatalog Outcome = "empty_catalog"
)

// SearchResult is the engine's answer to one query.
type SearchResult struct {
	Listings []ScoredListing `json:"listings"`
	Count    int             `json:"count"`
	Outcome  Outcome         `json:"outcome"`
	Intent   *QueryIntent    `json:"intent,omitempty"`
	Took     int64           `json:"took_ms"`
}

// SearchRequest is the HTTP payload for a search.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k"`
}

// SearchResponse is the HTTP response for a search, the engine result plus
// the best-effort phrased reply.
type SearchResponse struct {
	Results []ScoredListing `json:"results"`
	Count   int             `json:"count"`
	Outcome Outcome         `json:"outcome"`
	Intent  *QueryIntent    `json:"intent,omitempty"`
	Reply   string          `json:"reply,omitempty"`
	Took    int64           `json:"took_ms"`
}
