package telemetry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Memory is the in-process recorder used when no Redis is configured.
// Counters reset on restart, which is acceptable for best-effort usage
// telemetry.
type Memory struct {
	mu             sync.Mutex
	totalSearches  int64
	engines        map[string]int64
	queries        map[string]int64
	latencySumMS   float64
	latencySamples int64
}

// NewMemory creates an in-memory recorder.
func NewMemory() *Memory {
	return &Memory{
		engines: make(map[string]int64),
		queries: make(map[string]int64),
	}
}

// RecordSearch implements Recorder.
func (m *Memory) RecordSearch(_ context.Context, query string, engine domain.EngineType, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalSearches++
	m.engines[string(engine)]++
	m.queries[query]++
	m.latencySumMS += float64(latency.Milliseconds())
	m.latencySamples++
}

// RecordInsight implements Recorder. Insight sources are not part of the
// summary payload; the memory recorder keeps the method for contract
// symmetry with the Redis store.
func (m *Memory) RecordInsight(_ context.Context, _, _ string) {}

// Summary implements Recorder.
func (m *Memory) Summary(_ context.Context) (domain.TelemetrySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := domain.TelemetrySummary{
		TotalSearches:   m.totalSearches,
		EngineBreakdown: make(map[string]int64, len(m.engines)),
	}
	for k, v := range m.engines {
		s.EngineBreakdown[k] = v
	}

	top := make([]domain.QueryCount, 0, len(m.queries))
	for q, c := range m.queries {
		top = append(top, domain.QueryCount{Query: q, Count: c})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Query < top[j].Query
	})
	if len(top) > topQueryLimit {
		top = top[:topQueryLimit]
	}
	s.TopQueries = top

	if m.latencySamples > 0 {
		avg := m.latencySumMS / float64(m.latencySamples)
		s.AvgLatencyMS = &avg
	}
	return s, nil
}

// Ping implements Recorder; the in-memory store is always reachable.
func (m *Memory) Ping(_ context.Context) error { return nil }
