package catalog

import (
	"strconv"
	"strings"

	"estate-search/internal/model"
)

// PlaceholderName is substituted when a raw record carries no usable name.
const PlaceholderName = "Unnamed Project"

// Normalizer transforms raw catalog records into canonical Listings. It has
// no side effects and is idempotent: normalizing an already-canonical
// record yields the same record.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize processes raw records and returns an equal-length slice of
// canonical listings. Field resolution is first-present-wins:
// property_type falls back to type, price_min and price_max fall back to
// price, everything else to the empty string or zero.
func (n *Normalizer) Normalize(raw []model.RawListing) []model.Listing {
	out := make([]model.Listing, 0, len(raw))
	for _, r := range raw {
		out = append(out, n.normalizeOne(r))
	}
	return out
}

func (n *Normalizer) normalizeOne(r model.RawListing) model.Listing {
	name := asString(r["name"])
	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}

	return model.Listing{
		ID:             asInt64(r["id"]),
		Name:           name,
		City:           asString(r["city"]),
		Location:       asString(r["location"]),
		PropertyType:   firstString(r, "property_type", "type"),
		Bedrooms:       asString(r["bedrooms"]),
		PriceMin:       firstNumber(r, "price_min", "price"),
		PriceMax:       firstNumber(r, "price_max", "price"),
		Developer:      asString(r["developer"]),
		Amenities:      asString(r["amenities"]),
		PossessionDate: asString(r["possession_date"]),
		Description:    asString(r["description"]),
	}
}

// firstString returns the text form of the first key present with a
// non-empty value.
func firstString(r model.RawListing, keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstNumber returns the numeric form of the first key present with a
// non-zero value. Zero or malformed values mean "no price data", never an
// error.
func firstNumber(r model.RawListing, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if f := asFloat(v); f != 0 {
				return f
			}
		}
	}
	return 0
}

// asString coerces any raw value to its text representation so substring
// matching downstream is always safe.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asFloat coerces any raw value to a number, treating malformed input as 0.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	return int64(asFloat(v))
}
