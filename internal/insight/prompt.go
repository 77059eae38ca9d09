package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// SystemPrompt frames the model for every provider.
const SystemPrompt = "You write concise, product-oriented insights for AVOD content strategy. Return ONLY valid JSON."

// buildPrompt renders the structured prompt for one (query, title) pair.
// The allow-list is spelled out so a compliant model cannot invent a
// vertical; non-compliant output is rejected at validation anyway.
func buildPrompt(query string, t domain.Title) string {
	genres := "Unknown"
	if len(t.Genres) > 0 {
		genres = strings.Join(t.Genres, ", ")
	}
	rating := t.Rating
	if rating == "" {
		rating = "Unknown"
	}
	year := "Unknown"
	if t.ReleaseYear != nil {
		year = strconv.Itoa(*t.ReleaseYear)
	}
	runtime := "Unknown"
	if t.RuntimeMinutes != nil {
		runtime = strconv.Itoa(*t.RuntimeMinutes)
	}

	return fmt.Sprintf(
		"You are an AVOD content strategist. A user searched for %q and the top result is %q "+
			"(%s, %s, rated %s, %s, %s min).\n"+
			"Return ONLY valid JSON with these keys:\n"+
			"- hook: a compelling one-sentence pitch for why this content is valuable\n"+
			"- ad_strategy: one sentence on ad placement strategy\n"+
			"- advertiser_vertical: one of [%s]\n"+
			"JSON only, no markdown.",
		query, t.Name, t.ContentType, genres, rating, year, runtime,
		strings.Join(domain.AdVerticals, ", "),
	)
}
