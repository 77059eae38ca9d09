package insight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kailas-cloud/adscout/internal/domain"
)

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

type rawInsight struct {
	Hook               string `json:"hook"`
	AdStrategy         string `json:"ad_strategy"`
	AdvertiserVertical string `json:"advertiser_vertical"`
}

// parseInsight extracts and validates the provider's JSON payload.
// Models often wrap JSON in prose or markdown fences; the first JSON
// object found in the text is used.
func parseInsight(raw, title, source string) (domain.Insight, error) {
	var parsed rawInsight
	text := strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		block := jsonBlockRe.FindString(text)
		if block == "" {
			return domain.Insight{}, fmt.Errorf("no JSON object in response: %w", domain.ErrInvalidInsight)
		}
		if err := json.Unmarshal([]byte(block), &parsed); err != nil {
			return domain.Insight{}, fmt.Errorf("malformed JSON object: %w", domain.ErrInvalidInsight)
		}
	}

	hook := strings.TrimSpace(parsed.Hook)
	strategy := strings.TrimSpace(parsed.AdStrategy)
	vertical := strings.TrimSpace(parsed.AdvertiserVertical)

	if hook == "" {
		return domain.Insight{}, fmt.Errorf("missing hook: %w", domain.ErrInvalidInsight)
	}
	if strategy == "" {
		return domain.Insight{}, fmt.Errorf("missing ad_strategy: %w", domain.ErrInvalidInsight)
	}
	if !domain.IsAllowedVertical(vertical) {
		return domain.Insight{}, fmt.Errorf("advertiser_vertical %q not in allow-list: %w",
			vertical, domain.ErrInvalidInsight)
	}

	return domain.Insight{
		Title:              title,
		Hook:               hook,
		AdStrategy:         strategy,
		AdvertiserVertical: vertical,
		Source:             source,
	}, nil
}
