package insight

import (
	"context"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// TitleFinder resolves a title by display name.
type TitleFinder interface {
	FindByName(name string) (domain.Title, bool)
}

// Generator produces a validated insight for one (query, title) pair.
// Implementations never fail; worst case is the fallback-tagged insight.
type Generator interface {
	GetInsight(ctx context.Context, query string, t domain.Title) domain.Insight
}

// Recorder receives best-effort usage telemetry.
type Recorder interface {
	RecordInsight(ctx context.Context, title, source string)
}
