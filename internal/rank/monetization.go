// Package rank holds the monetization heuristic, brand-safety
// classification, advertiser-vertical suggestions, and the
// multi-objective ranker. Everything here is pure and deterministic:
// policy lives in lookup tables, traversal logic stays generic.
package rank

import "github.com/kailas-cloud/adscout/internal/domain"

// ratingFriendliness scores how advertiser-friendly a rating is
// (proxy, higher = friendlier).
var ratingFriendliness = map[string]float64{
	"TV-Y":     1.00,
	"TV-Y7":    0.98,
	"TV-Y7_FV": 0.98,
	"TV-G":     0.96,
	"G":        0.96,
	"TV-PG":    0.86,
	"PG":       0.86,
	"PG-13":    0.76,
	"TV-14":    0.70,
	"R":        0.55,
	"TV-MA":    0.40,
}

const unratedFriendliness = 0.65

// genrePremium is proxy advertiser demand per genre. Not ground truth,
// just an explainable, tunable heuristic.
var genrePremium = map[string]float64{
	"kids & family": 0.90,
	"animation":     0.88,
	"comedy":        0.82,
	"action":        0.78,
	"sci-fi":        0.78,
	"adventure":     0.76,
	"reality":       0.74,
	"drama":         0.72,
	"romance":       0.70,
	"documentary":   0.68,
	"thriller":      0.62,
	"crime":         0.60,
	"horror":        0.55,
}

const defaultGenrePremium = 0.65

// riskCeiling caps monetization by declared brand-safety risk, keeping
// the score monotone in risk.
var riskCeiling = map[domain.RiskLevel]float64{
	domain.RiskLow:    1.00,
	domain.RiskMedium: 0.85,
	domain.RiskHigh:   0.60,
}

// Component weights: brand suitability dominates demand-side signals.
const (
	ratingWeight  = 0.50
	runtimeWeight = 0.20
	genreWeight   = 0.30
)

// Breakdown exposes the monetization components for debug output.
type Breakdown struct {
	RatingScore  float64 `json:"rating_score"`
	LengthScore  float64 `json:"length_score"`
	GenreScore   float64 `json:"genre_score"`
	RiskCeiling  float64 `json:"risk_ceiling"`
	UncappedBase float64 `json:"uncapped_base"`
}

// Assessment bundles every per-title commercial signal. It depends only
// on immutable title fields, so the same title always assesses the same.
type Assessment struct {
	Monetization  float64
	Breakdown     Breakdown
	BrandSafety   domain.BrandSafety
	AdOpportunity domain.AdOpportunity
}

// Assess computes the monetization score, brand-safety classification,
// and advertiser-vertical suggestion for one title.
func Assess(t domain.Title) Assessment {
	safety := classifyBrandSafety(t.Rating, t.Genres)

	rScore := unratedFriendliness
	if s, ok := ratingFriendliness[t.Rating]; ok {
		rScore = s
	}
	lScore := runtimeInventoryScore(t.RuntimeMinutes, t.ContentType)
	gScore := genrePremiumScore(t.Genres)

	base := ratingWeight*rScore + runtimeWeight*lScore + genreWeight*gScore
	ceiling := riskCeiling[safety.Risk]
	score := clamp01(base)
	if score > ceiling {
		score = ceiling
	}

	verticals := SuggestVerticals(t.Genres, t.Rating)
	return Assessment{
		Monetization: score,
		Breakdown: Breakdown{
			RatingScore:  rScore,
			LengthScore:  lScore,
			GenreScore:   gScore,
			RiskCeiling:  ceiling,
			UncappedBase: base,
		},
		BrandSafety: safety,
		AdOpportunity: domain.AdOpportunity{
			PrimaryVertical:    verticals[0],
			SecondaryVerticals: verticals[1:],
			Rationale:          "Rules-based advertiser fit derived from genre + rating (proxy).",
		},
	}
}

// runtimeInventoryScore is a proxy for ad-break inventory. Movies earn
// more slots with longer runtimes up to a cap; series runtimes are
// usually absent in the source data, so they get a neutral value.
func runtimeInventoryScore(runtimeMinutes *int, contentType domain.ContentType) float64 {
	if contentType == domain.ContentTypeSeries {
		return 0.60
	}
	if runtimeMinutes == nil || *runtimeMinutes == 0 {
		return 0.50
	}
	// 90-120 minutes is a full feature; caps beyond 140.
	return clamp01(float64(*runtimeMinutes-60) / 80.0)
}

// genrePremiumScore takes the max premium across genres as the
// primary-appeal proxy.
func genrePremiumScore(genres []string) float64 {
	best := 0.0
	found := false
	for _, g := range genres {
		if s, ok := genrePremium[normalizeGenre(g)]; ok {
			found = true
			if s > best {
				best = s
			}
		}
	}
	if !found {
		return defaultGenrePremium
	}
	return best
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
