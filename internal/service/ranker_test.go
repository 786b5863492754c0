package service

import (
	"testing"

	"estate-search/internal/model"
)

func defaultRanker(policy Policy) *Ranker {
	return NewRanker(policy, 3, 2, 1, 2)
}

func twoCityCatalog() []model.Listing {
	return []model.Listing{
		{ID: 1, Name: "Lodha World Towers", City: "Mumbai", PropertyType: "Apartments", PriceMin: 2.5e7, PriceMax: 5e7},
		{ID: 2, Name: "DLF Villas", City: "Goa", PropertyType: "Villas", PriceMin: 3e7, PriceMax: 6e7},
	}
}

func TestRankerCityAndTypeScenario(t *testing.T) {
	intent := NewIntentParser(2).Parse("Apartments in Mumbai")

	for _, policy := range []Policy{PolicyAdditive, PolicyStrict} {
		t.Run(string(policy), func(t *testing.T) {
			results := defaultRanker(policy).Rank(twoCityCatalog(), intent)

			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if results[0].ID != 1 {
				t.Errorf("expected the Mumbai apartment, got listing %d", results[0].ID)
			}
			// City +3, type +2 at minimum.
			if results[0].Score < 5 {
				t.Errorf("expected score >= 5, got %d", results[0].Score)
			}
		})
	}
}

func TestRankerBudgetScenario(t *testing.T) {
	catalog := []model.Listing{
		{ID: 1, Name: "Raheja Mindspace", City: "Hyderabad", PropertyType: "Apartments", PriceMin: 4e6, PriceMax: 2.5e7},
		{ID: 2, Name: "Lodha World Towers", City: "Mumbai", PropertyType: "Apartments", PriceMin: 2.5e7, PriceMax: 5e7},
	}
	intent := NewIntentParser(2).Parse("Properties under 2 crores")

	t.Run("additive", func(t *testing.T) {
		results := defaultRanker(PolicyAdditive).Rank(catalog, intent)

		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].ID != 1 || results[0].Score != 2 {
			t.Errorf("expected listing 1 with budget score 2, got listing %d score %d", results[0].ID, results[0].Score)
		}
		if len(results[0].MatchedReasons) != 1 || results[0].MatchedReasons[0] != ReasonWithinBudget {
			t.Errorf("expected only %q reason, got %v", ReasonWithinBudget, results[0].MatchedReasons)
		}
	})

	t.Run("strict excludes over-budget", func(t *testing.T) {
		results := defaultRanker(PolicyStrict).Rank(catalog, intent)

		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].ID != 1 {
			t.Errorf("expected listing 1, got %d", results[0].ID)
		}
	})
}

func TestRankerBudgetComparesAgainstPriceMin(t *testing.T) {
	// priceMin above priceMax is tolerated; priceMin stays the comparison
	// value.
	catalog := []model.Listing{
		{ID: 1, Name: "Broken Record", City: "Pune", PropertyType: "Apartments", PriceMin: 3e7, PriceMax: 1e7},
	}
	intent := &model.QueryIntent{BudgetMax: 2e7, HasBudget: true}

	results := defaultRanker(PolicyAdditive).Rank(catalog, intent)
	if len(results) != 0 {
		t.Errorf("expected no results for priceMin above ceiling, got %d", len(results))
	}
}

func TestRankerStableOrderOnTies(t *testing.T) {
	catalog := []model.Listing{
		{ID: 1, Name: "Lodha World Towers", City: "Mumbai", PropertyType: "Apartments"},
		{ID: 2, Name: "Godrej Aqua", City: "Mumbai", PropertyType: "Apartments"},
	}
	intent := &model.QueryIntent{Cities: []string{"mumbai"}}

	for i := 0; i < 5; i++ {
		results := defaultRanker(PolicyAdditive).Rank(catalog, intent)
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Score != results[1].Score {
			t.Fatalf("expected a tie, got %d vs %d", results[0].Score, results[1].Score)
		}
		if results[0].ID != 1 || results[1].ID != 2 {
			t.Errorf("tie broke catalog order: got %d, %d", results[0].ID, results[1].ID)
		}
	}
}

func TestRankerKeywordMonotonicity(t *testing.T) {
	catalog := twoCityCatalog()

	base := &model.QueryIntent{Cities: []string{"mumbai"}, Keywords: []string{"towers"}}
	extended := &model.QueryIntent{Cities: []string{"mumbai"}, Keywords: []string{"towers", "lodha"}}

	baseResults := defaultRanker(PolicyAdditive).Rank(catalog, base)
	extendedResults := defaultRanker(PolicyAdditive).Rank(catalog, extended)

	if len(baseResults) == 0 || len(extendedResults) == 0 {
		t.Fatal("expected results for both intents")
	}
	if extendedResults[0].Score < baseResults[0].Score {
		t.Errorf("adding a matching keyword decreased score: %d -> %d",
			baseResults[0].Score, extendedResults[0].Score)
	}
}

func TestRankerKeywordDeduplicatedPerToken(t *testing.T) {
	catalog := []model.Listing{
		{ID: 1, Name: "Towers Towers Towers", City: "Mumbai", PropertyType: "Apartments"},
	}
	intent := &model.QueryIntent{Cities: []string{"mumbai"}, Keywords: []string{"towers"}}

	results := defaultRanker(PolicyAdditive).Rank(catalog, intent)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// City +3 plus exactly +1 for the token, regardless of occurrences.
	if results[0].Score != 4 {
		t.Errorf("expected score 4, got %d", results[0].Score)
	}
}

func TestRankerStrictMultiCityExcludesAll(t *testing.T) {
	intent := &model.QueryIntent{Cities: []string{"goa", "mumbai"}}

	results := defaultRanker(PolicyStrict).Rank(twoCityCatalog(), intent)
	if len(results) != 0 {
		t.Errorf("expected no listing to satisfy two cities at once, got %d", len(results))
	}
}

func TestRankerAdditiveDropsZeroScores(t *testing.T) {
	intent := &model.QueryIntent{Cities: []string{"jaipur"}}

	results := defaultRanker(PolicyAdditive).Rank(twoCityCatalog(), intent)
	if len(results) != 0 {
		t.Errorf("expected zero-score listings to be excluded, got %d", len(results))
	}
}
