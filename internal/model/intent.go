package model

// QueryIntent holds the structured hints extracted from a free-text query.
type QueryIntent struct {
	// Cities are the canonical city keys whose aliases appeared in the
	// query. Matching is OR across cities.
	Cities []string `json:"cities,omitempty"`
	// PropertyTypes are the vocabulary terms matched in the query, with
	// aliases (flat -> apartment) already resolved. OR across types.
	PropertyTypes []string `json:"property_types,omitempty"`
	// BudgetMax is the extracted budget ceiling in base currency units.
	// Only meaningful when HasBudget is true; a zero ceiling with
	// HasBudget unset means no budget constraint was found.
	BudgetMax float64 `json:"budget_max,omitempty"`
	HasBudget bool    `json:"has_budget,omitempty"`
	// Keywords are the deduplicated query tokens longer than three
	// characters, used for free keyword overlap scoring.
	Keywords   []string `json:"keywords,omitempty"`
	Confidence float64  `json:"confidence"`
}

// HasHints reports whether any structured hint (city, property type or
// budget) was extracted. Keywords alone do not count: a query that yields
// only keywords is an interpretation miss and takes the fallback path.
func (i *QueryIntent) HasHints() bool {
	return len(i.Cities) > 0 || len(i.PropertyTypes) > 0 || i.HasBudget
}

// HasCity reports whether at least one city hint was extracted. Decides
// whether an empty result is a confident miss or an interpretation miss.
func (i *QueryIntent) HasCity() bool {
	return len(i.Cities) > 0
}
