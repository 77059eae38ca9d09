package rank

import (
	"sort"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Rank applies structural filters, blends relevance with monetization
// under alpha, sorts, and truncates to topK. Pure function of its
// inputs: identical inputs always yield identical ordered output.
//
// Alpha must already be validated to [0,1] by the caller; filters
// exclude candidates entirely before any scoring.
func Rank(
	titles []domain.Title,
	relevance map[int]float64,
	alpha float64,
	filters *domain.Filters,
	topK int,
	includeDebug bool,
) []domain.ScoredTitle {
	scored := make([]domain.ScoredTitle, 0, len(titles))

	for _, t := range titles {
		if !passesFilters(t, filters) {
			continue
		}

		rel := relevance[t.ID] // absent rows score 0
		a := Assess(t)
		final := alpha*rel + (1-alpha)*a.Monetization

		st := domain.ScoredTitle{
			Title:         t,
			Relevance:     rel,
			Monetization:  a.Monetization,
			Final:         final,
			BrandSafety:   a.BrandSafety,
			AdOpportunity: a.AdOpportunity,
		}
		if includeDebug {
			st.Debug = map[string]any{
				"raw_relevance":          rel,
				"monetization_breakdown": a.Breakdown,
			}
		}
		scored = append(scored, st)
	}

	// Final desc, ties by relevance desc, then catalog order. The ID
	// tie-break makes the ordering total, so sort.Slice is deterministic.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Final != scored[j].Final {
			return scored[i].Final > scored[j].Final
		}
		if scored[i].Relevance != scored[j].Relevance {
			return scored[i].Relevance > scored[j].Relevance
		}
		return scored[i].Title.ID < scored[j].Title.ID
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func passesFilters(t domain.Title, f *domain.Filters) bool {
	if f == nil {
		return true
	}

	if len(f.Ratings) > 0 {
		ok := false
		for _, r := range f.Ratings {
			if t.Rating == r {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if f.YearMin != nil && (t.ReleaseYear == nil || *t.ReleaseYear < *f.YearMin) {
		return false
	}
	if f.YearMax != nil && (t.ReleaseYear == nil || *t.ReleaseYear > *f.YearMax) {
		return false
	}

	if len(f.ContentTypes) > 0 {
		ok := false
		for _, ct := range f.ContentTypes {
			if t.ContentType == ct {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}
