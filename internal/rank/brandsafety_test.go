package rank

import (
	"testing"

	"github.com/kailas-cloud/adscout/internal/domain"
)

func TestClassifyBrandSafety(t *testing.T) {
	tests := []struct {
		name     string
		rating   string
		genres   []string
		wantTier string
		wantRisk domain.RiskLevel
	}{
		{"kids rating", "TV-Y", []string{"Kids & Family"}, "Kids", domain.RiskLow},
		{"family rating", "G", nil, "Family", domain.RiskLow},
		{"general rating", "TV-PG", []string{"Comedy"}, "General", domain.RiskLow},
		{"teen rating", "TV-14", []string{"Drama"}, "Teen", domain.RiskMedium},
		{"mature rating", "TV-MA", []string{"Drama"}, "Mature", domain.RiskHigh},
		{"unrated defaults medium", "", nil, "Unrated", domain.RiskMedium},
		{"unknown rating treated as unrated", "NR-17", nil, "Unrated", domain.RiskMedium},
		{"sensitive genre escalates low", "TV-PG", []string{"Thriller"}, "General", domain.RiskMedium},
		{"sensitive genre keeps medium", "TV-14", []string{"Horror"}, "Teen", domain.RiskMedium},
		{"sensitive genre keeps high", "R", []string{"Crime"}, "Mature", domain.RiskHigh},
		{"genre match is case-insensitive", "PG", []string{" HORROR "}, "General", domain.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyBrandSafety(tt.rating, tt.genres)
			if got.Tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", got.Tier, tt.wantTier)
			}
			if got.Risk != tt.wantRisk {
				t.Errorf("risk = %q, want %q", got.Risk, tt.wantRisk)
			}
			if len(got.Notes) == 0 {
				t.Error("expected at least one explanatory note")
			}
		})
	}
}

func TestClassifyBrandSafety_KidsNote(t *testing.T) {
	got := classifyBrandSafety("TV-Y", []string{"Kids & Family"})
	found := false
	for _, n := range got.Notes {
		if n == "Kids & Family content tends to be broadly brand-safe." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected kids note, got %v", got.Notes)
	}
}
