package service

import (
	"regexp"
	"strconv"
	"strings"

	"estate-search/internal/model"
	"estate-search/internal/utils"
)

// Crore is the currency scale unit used in budget parsing.
const Crore = 1e7

// minKeywordLen: tokens must be longer than this to count for keyword
// overlap scoring.
const minKeywordLen = 3

// cityAliases maps a canonical city key to the surface forms that imply
// it. A query may match several canonical cities; all of them participate
// as acceptable filters.
var cityAliases = map[string][]string{
	"mumbai":    {"mumbai", "bombay", "navi mumbai", "thane"},
	"delhi":     {"delhi", "new delhi", "gurgaon", "gurugram", "noida", "ncr"},
	"bangalore": {"bangalore", "bengaluru", "whitefield", "electronic city"},
	"hyderabad": {"hyderabad", "secunderabad", "hitec city", "gachibowli"},
	"chennai":   {"chennai", "madras"},
	"pune":      {"pune", "hinjewadi"},
	"kolkata":   {"kolkata", "calcutta"},
	"ahmedabad": {"ahmedabad"},
	"goa":       {"goa", "panaji"},
	"jaipur":    {"jaipur"},
	"lucknow":   {"lucknow"},
	"kochi":     {"kochi", "cochin"},
}

// typeAliases maps a property-type vocabulary term to its query surface
// forms. "flat" is an alias of "apartment".
var typeAliases = map[string][]string{
	"apartment":   {"apartment", "flat"},
	"villa":       {"villa"},
	"house":       {"house"},
	"office":      {"office"},
	"commercial":  {"commercial"},
	"residential": {"residential"},
	"tower":       {"tower"},
	"park":        {"park"},
	"space":       {"space"},
}

var (
	// budgetPattern captures "2 crore", "2.5 cr", "1crore" etc.
	budgetPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:crores?|cr)\b`)
	// croreTokenPattern detects a bare crore unit token with no number.
	croreTokenPattern = regexp.MustCompile(`\b(?:crores?|cr)\b`)
)

// IntentParser extracts structured filter hints from free-text queries. It
// is deterministic and never fails: an unrecognizable query simply yields
// an intent with no hints.
type IntentParser struct {
	// implicitBudgetCrores is assumed when the query says "under ... crore"
	// without an explicit number. 0 disables the assumption.
	implicitBudgetCrores float64
}

// NewIntentParser creates a new intent parser.
func NewIntentParser(implicitBudgetCrores float64) *IntentParser {
	return &IntentParser{implicitBudgetCrores: implicitBudgetCrores}
}

// Parse extracts city, property-type and budget hints from the query.
// Interpretation happens once per query on the lower-cased string.
func (p *IntentParser) Parse(query string) *model.QueryIntent {
	q := strings.ToLower(strings.TrimSpace(query))
	intent := &model.QueryIntent{}
	if q == "" {
		return intent
	}

	intent.Cities = utils.MatchAliases(q, cityAliases)
	intent.PropertyTypes = utils.MatchAliases(q, typeAliases)
	intent.Keywords = utils.Tokens(q, minKeywordLen)

	if m := budgetPattern.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			intent.BudgetMax = v * Crore
			intent.HasBudget = true
		}
	} else if p.implicitBudgetCrores > 0 &&
		strings.Contains(q, "under") && croreTokenPattern.MatchString(q) {
		intent.BudgetMax = p.implicitBudgetCrores * Crore
		intent.HasBudget = true
	}

	intent.Confidence = confidence(intent)
	return intent
}

// confidence grows with the number of distinct hint kinds extracted.
func confidence(intent *model.QueryIntent) float64 {
	kinds := 0
	if len(intent.Cities) > 0 {
		kinds++
	}
	if len(intent.PropertyTypes) > 0 {
		kinds++
	}
	if intent.HasBudget {
		kinds++
	}
	return float64(kinds) / 3
}
