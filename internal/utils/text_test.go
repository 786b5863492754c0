package utils

import (
	"reflect"
	"testing"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Apartments", "apartment", true},
		{"mumbai", "Mumbai", true},
		{"Commercial Office", "office", true},
		{"Villas", "apartment", false},
		{"", "x", false},
		{"anything", "", true},
	}

	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v; want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestMatchAliases(t *testing.T) {
	aliases := map[string][]string{
		"mumbai":    {"mumbai", "bombay", "thane"},
		"bangalore": {"bangalore", "bengaluru"},
		"goa":       {"goa"},
	}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single alias", "flats in Bombay", []string{"mumbai"}},
		{"canonical form", "apartments in bangalore", []string{"bangalore"}},
		{"multiple cities sorted", "mumbai or goa", []string{"goa", "mumbai"}},
		{"no match", "apartments anywhere", nil},
		{"two aliases one key", "thane near mumbai", []string{"mumbai"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchAliases(tt.input, aliases)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchAliases(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"drops short tokens", "flat in goa", []string{"flat"}},
		{"lowercases and splits punctuation", "Luxury, Apartments!", []string{"luxury", "apartments"}},
		{"deduplicates keeping order", "villa beach villa", []string{"villa", "beach"}},
		{"empty input", "", nil},
		{"keeps digits", "under 25000 sqft", []string{"under", "25000", "sqft"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input, 3)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
