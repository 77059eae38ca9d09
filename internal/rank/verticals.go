package rank

import "github.com/kailas-cloud/adscout/internal/domain"

// verticalRule maps a genre trigger set (or rating trigger) to suggested
// verticals, consulted in declaration order.
type verticalRule struct {
	genres    []string
	ratings   []string
	verticals []string
}

var verticalRules = []verticalRule{
	{
		genres:    []string{"kids & family"},
		ratings:   []string{"TV-Y", "TV-Y7", "TV-Y7_FV", "TV-G", "G"},
		verticals: []string{"CPG", "QSR", "Retail"},
	},
	{
		genres:    []string{"action", "thriller", "sci-fi", "adventure"},
		verticals: []string{"Auto", "Gaming", "Tech"},
	},
	{
		genres:    []string{"drama", "romance"},
		verticals: []string{"Insurance", "Travel", "Retail"},
	},
	{
		genres:    []string{"documentary"},
		verticals: []string{"Financial Services", "Tech", "Health & Wellness"},
	},
	{
		genres:    []string{"comedy"},
		verticals: []string{"QSR", "CPG", "Retail"},
	},
	{
		genres:    []string{"horror", "crime"},
		verticals: []string{"Entertainment", "Gaming"},
	},
}

// defaultVerticals is used when no rule matches.
var defaultVerticals = []string{"CPG", "Retail", "Entertainment"}

const maxVerticals = 5

// SuggestVerticals returns 1-5 allow-listed advertiser verticals for the
// genre/rating combination, deduped in rule order. Never empty.
func SuggestVerticals(genres []string, rating string) []string {
	gset := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		gset[normalizeGenre(g)] = struct{}{}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, maxVerticals)
	for _, rule := range verticalRules {
		if !rule.matches(gset, rating) {
			continue
		}
		for _, v := range rule.verticals {
			if !domain.IsAllowedVertical(v) {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		out = append(out, defaultVerticals...)
	}
	if len(out) > maxVerticals {
		out = out[:maxVerticals]
	}
	return out
}

func (r verticalRule) matches(gset map[string]struct{}, rating string) bool {
	for _, g := range r.genres {
		if _, ok := gset[g]; ok {
			return true
		}
	}
	for _, rt := range r.ratings {
		if rating == rt {
			return true
		}
	}
	return false
}
