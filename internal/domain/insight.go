package domain

// AdVerticals is the fixed advertiser-vertical allow-list. A provider
// returning anything outside this list fails validation.
var AdVerticals = []string{
	"CPG",
	"Auto",
	"Insurance",
	"Travel",
	"Gaming",
	"QSR",
	"Tech",
	"Retail",
	"Financial Services",
	"Health & Wellness",
	"Entertainment",
}

// IsAllowedVertical reports whether v is in the allow-list.
func IsAllowedVertical(v string) bool {
	for _, a := range AdVerticals {
		if v == a {
			return true
		}
	}
	return false
}

// InsightSourceFallback tags insights produced by the local heuristic
// generator rather than an upstream provider.
const InsightSourceFallback = "fallback"

// Insight is the validated structured explanation for one title.
// AdvertiserVertical is always a member of AdVerticals.
type Insight struct {
	Title              string `json:"title"`
	Hook               string `json:"hook"`
	AdStrategy         string `json:"ad_strategy"`
	AdvertiserVertical string `json:"advertiser_vertical"`
	Source             string `json:"source"`
}
