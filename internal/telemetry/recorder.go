// Package telemetry records best-effort usage counters: total searches,
// engine breakdown, top queries, latency, and insight sources. Recording
// must never fail a user request; errors are logged and dropped. The
// backing store is Redis when configured, otherwise process memory.
package telemetry

import (
	"context"
	"time"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Recorder is the telemetry contract consumed by the usecase layer.
type Recorder interface {
	RecordSearch(ctx context.Context, query string, engine domain.EngineType, latency time.Duration)
	RecordInsight(ctx context.Context, title, source string)
	Summary(ctx context.Context) (domain.TelemetrySummary, error)
	Ping(ctx context.Context) error
}

// topQueryLimit bounds the top-queries breakdown in summaries.
const topQueryLimit = 10
