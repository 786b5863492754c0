package model

import "strconv"

// Listing is the canonical catalog record for one project/unit offering.
// Normalization guarantees every field is present: absent raw fields become
// empty strings or zero prices, so downstream matching never hits a missing
// key.
type Listing struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	City           string  `json:"city"`
	Location       string  `json:"location"`
	PropertyType   string  `json:"property_type"`
	Bedrooms       string  `json:"bedrooms"`
	PriceMin       float64 `json:"price_min"`
	PriceMax       float64 `json:"price_max"`
	Developer      string  `json:"developer"`
	Amenities      string  `json:"amenities"`
	PossessionDate string  `json:"possession_date"`
	Description    string  `json:"description"`
}

// RawListing is an unnormalized record as delivered by a catalog source.
// Field names vary between sources (property_type vs type, price_min vs
// price) and values may be missing or carry the wrong type.
type RawListing map[string]any

// Raw converts a canonical listing back into the raw record shape. Useful
// for round-tripping through the normalizer and for sources that re-ingest
// canonical data.
func (l Listing) Raw() RawListing {
	return RawListing{
		"id":              strconv.FormatInt(l.ID, 10),
		"name":            l.Name,
		"city":            l.City,
		"location":        l.Location,
		"property_type":   l.PropertyType,
		"bedrooms":        l.Bedrooms,
		"price_min":       l.PriceMin,
		"price_max":       l.PriceMax,
		"developer":       l.Developer,
		"amenities":       l.Amenities,
		"possession_date": l.PossessionDate,
		"description":     l.Description,
	}
}

// ScoredListing is a listing annotated with the score it accumulated for a
// particular query. Fallback results carry no score.
type ScoredListing struct {
	Listing
	Score          int      `json:"score,omitempty"`
	MatchedReasons []string `json:"matched_reasons,omitempty"`
}
