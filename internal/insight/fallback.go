package insight

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// hookTemplates are genre-keyed fill-ins for the local generator. The
// first matching genre wins; %s is the title name.
var hookTemplates = map[string]string{
	"kids & family": "%s is easy co-viewing that keeps the whole household on the couch through every break.",
	"animation":     "%s pairs broad visual appeal with the kind of repeat viewing advertisers love.",
	"comedy":        "%s delivers the light, rewatchable energy that keeps viewers through ad breaks.",
	"action":        "%s brings high-tempo set pieces that hold attention deep into the runtime.",
	"sci-fi":        "%s offers a high-concept world that pulls curious viewers into a full session.",
	"adventure":     "%s is a journey narrative that sustains long, ad-friendly watch sessions.",
	"drama":         "%s builds the emotional investment that translates into complete viewing sessions.",
	"romance":       "%s leans into feel-good stakes that keep viewers watching to the resolution.",
	"documentary":   "%s attracts an engaged, lean-in audience that stays for the full story.",
	"reality":       "%s serves bingeable episodic beats with natural pause points for ads.",
	"thriller":      "%s keeps tension high enough that viewers stay put between breaks.",
	"crime":         "%s hooks procedural fans who reliably watch through to the reveal.",
	"horror":        "%s draws a committed genre audience that shows up for the whole ride.",
}

const defaultHookTemplate = "%s matches the mood of this search and holds attention through a full viewing session."

// fallbackInsight is the terminal state of the orchestrator: a
// deterministic, template-filled insight tagged with the reserved
// fallback source. It cannot fail.
func fallbackInsight(t domain.Title, primaryVertical string) domain.Insight {
	tmpl := defaultHookTemplate
	for _, g := range t.Genres {
		if ht, ok := hookTemplates[strings.ToLower(strings.TrimSpace(g))]; ok {
			tmpl = ht
			break
		}
	}

	return domain.Insight{
		Title: t.Name,
		Hook:  fmt.Sprintf(tmpl, t.Name),
		AdStrategy: fmt.Sprintf(
			"Anchor %s advertisers against mid-roll breaks, using the title's genre context for creative alignment.",
			primaryVertical,
		),
		AdvertiserVertical: primaryVertical,
		Source:             domain.InsightSourceFallback,
	}
}
