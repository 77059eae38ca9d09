package rank

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/adscout/internal/domain"
)

type ratingTier struct {
	tier string
	risk domain.RiskLevel
}

var ratingTiers = map[string]ratingTier{
	"TV-Y":     {"Kids", domain.RiskLow},
	"TV-Y7":    {"Kids", domain.RiskLow},
	"TV-Y7_FV": {"Kids", domain.RiskLow},
	"TV-G":     {"Family", domain.RiskLow},
	"G":        {"Family", domain.RiskLow},
	"TV-PG":    {"General", domain.RiskLow},
	"PG":       {"General", domain.RiskLow},
	"PG-13":    {"Teen", domain.RiskMedium},
	"TV-14":    {"Teen", domain.RiskMedium},
	"R":        {"Mature", domain.RiskHigh},
	"TV-MA":    {"Mature", domain.RiskHigh},
}

// sensitiveGenres escalate risk one step when present.
var sensitiveGenres = map[string]struct{}{
	"horror":   {},
	"crime":    {},
	"thriller": {},
}

// classifyBrandSafety maps rating + genres to an explainable tier, risk
// level, and notes. Heuristic only, and communicated as such.
func classifyBrandSafety(rating string, genres []string) domain.BrandSafety {
	rt, ok := ratingTiers[rating]
	if !ok {
		rt = ratingTier{"Unrated", domain.RiskMedium}
	}

	notes := make([]string, 0, 3)
	if rt.tier == "Unrated" {
		notes = append(notes, "No rating available; treating as medium risk by default.")
	} else {
		notes = append(notes, fmt.Sprintf("Rating-based tier: %s (%s).", rt.tier, rating))
	}

	risk := rt.risk
	hasSensitive := false
	hasKids := false
	for _, g := range genres {
		ng := normalizeGenre(g)
		if _, ok := sensitiveGenres[ng]; ok {
			hasSensitive = true
		}
		if ng == "kids & family" {
			hasKids = true
		}
	}
	if hasSensitive {
		if risk == domain.RiskLow {
			risk = domain.RiskMedium
		}
		notes = append(notes, "Genre includes Horror/Crime/Thriller: elevated brand-safety risk.")
	}
	if hasKids {
		notes = append(notes, "Kids & Family content tends to be broadly brand-safe.")
	}

	return domain.BrandSafety{Tier: rt.tier, Risk: risk, Notes: notes}
}

func normalizeGenre(g string) string {
	return strings.ToLower(strings.TrimSpace(g))
}
