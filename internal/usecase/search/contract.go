package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Catalog reads the immutable title table.
type Catalog interface {
	All() []domain.Title
	Count() int
}

// Retriever scores a query and reports which engine answered.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (map[int]float64, domain.EngineInfo)
	Info() domain.EngineInfo
}

// Recorder receives best-effort usage telemetry.
type Recorder interface {
	RecordSearch(ctx context.Context, query string, engine domain.EngineType, latency time.Duration)
}
