package service

import (
	"sort"

	"estate-search/internal/model"
	"estate-search/internal/utils"
)

// Policy selects how extracted hints filter the catalog.
type Policy string

const (
	// PolicyAdditive ranks listings by accumulated hint score and drops
	// only zero-score listings (ranked OR-filter).
	PolicyAdditive Policy = "additive"
	// PolicyStrict excludes a listing outright when any extracted hint
	// fails to match it (hard AND-filter).
	PolicyStrict Policy = "strict"
)

// Match reason constants
const (
	ReasonCityMatch    = "City match"
	ReasonTypeMatch    = "Property type match"
	ReasonKeywordMatch = "Keyword match"
	ReasonWithinBudget = "Within budget"
)

// Ranker scores normalized listings against an extracted query intent.
type Ranker struct {
	policy        Policy
	weightCity    int
	weightType    int
	weightKeyword int
	weightBudget  int
}

// NewRanker creates a ranker with the given policy and score weights.
func NewRanker(policy Policy, weightCity, weightType, weightKeyword, weightBudget int) *Ranker {
	return &Ranker{
		policy:        policy,
		weightCity:    weightCity,
		weightType:    weightType,
		weightKeyword: weightKeyword,
		weightBudget:  weightBudget,
	}
}

// Policy returns the active filtering policy.
func (r *Ranker) Policy() Policy {
	return r.policy
}

// Rank scores every listing against the intent and returns the surviving
// candidates ordered by descending score. The sort is stable, so listings
// with equal scores keep their catalog order and identical inputs always
// produce identical output.
func (r *Ranker) Rank(listings []model.Listing, intent *model.QueryIntent) []model.ScoredListing {
	results := make([]model.ScoredListing, 0, len(listings))

	for _, listing := range listings {
		if r.policy == PolicyStrict && !r.matchesAll(listing, intent) {
			continue
		}

		score, reasons := r.score(listing, intent)
		if r.policy == PolicyAdditive && score == 0 {
			continue
		}

		results = append(results, model.ScoredListing{
			Listing:        listing,
			Score:          score,
			MatchedReasons: reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// score accumulates the additive hint score for one listing.
func (r *Ranker) score(listing model.Listing, intent *model.QueryIntent) (int, []string) {
	score := 0
	var reasons []string

	cityHits := 0
	for _, city := range intent.Cities {
		if utils.ContainsFold(listing.City, city) {
			score += r.weightCity
			cityHits++
		}
	}
	if cityHits > 0 {
		reasons = append(reasons, ReasonCityMatch)
	}

	typeHits := 0
	for _, ptype := range intent.PropertyTypes {
		if utils.ContainsFold(listing.PropertyType, ptype) {
			score += r.weightType
			typeHits++
		}
	}
	if typeHits > 0 {
		reasons = append(reasons, ReasonTypeMatch)
	}

	keywordHits := 0
	for _, kw := range intent.Keywords {
		if utils.ContainsFold(listing.Name, kw) || utils.ContainsFold(listing.PropertyType, kw) {
			score += r.weightKeyword
			keywordHits++
		}
	}
	if keywordHits > 0 {
		reasons = append(reasons, ReasonKeywordMatch)
	}

	if r.budgetSatisfied(listing, intent) {
		score += r.weightBudget
		reasons = append(reasons, ReasonWithinBudget)
	}

	return score, reasons
}

// matchesAll reports whether the listing satisfies every extracted hint.
func (r *Ranker) matchesAll(listing model.Listing, intent *model.QueryIntent) bool {
	for _, city := range intent.Cities {
		if !utils.ContainsFold(listing.City, city) {
			return false
		}
	}
	for _, ptype := range intent.PropertyTypes {
		if !utils.ContainsFold(listing.PropertyType, ptype) {
			return false
		}
	}
	if intent.HasBudget && !r.budgetSatisfied(listing, intent) {
		return false
	}
	return true
}

// budgetSatisfied compares the extracted ceiling against the listing's
// minimum price. The minimum is the budget-comparison value even when
// price_min > price_max in a malformed record.
func (r *Ranker) budgetSatisfied(listing model.Listing, intent *model.QueryIntent) bool {
	return intent.HasBudget && listing.PriceMin <= intent.BudgetMax
}
