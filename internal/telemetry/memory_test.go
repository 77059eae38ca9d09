package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/adscout/internal/domain"
)

func TestMemory_Summary(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.RecordSearch(ctx, "family movie", domain.EngineTFIDF, 10*time.Millisecond)
	m.RecordSearch(ctx, "family movie", domain.EngineTFIDF, 30*time.Millisecond)
	m.RecordSearch(ctx, "horror", domain.EngineEmbeddings, 20*time.Millisecond)

	s, err := m.Summary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalSearches != 3 {
		t.Errorf("total = %d, want 3", s.TotalSearches)
	}
	if s.EngineBreakdown[string(domain.EngineTFIDF)] != 2 {
		t.Errorf("tfidf count = %d, want 2", s.EngineBreakdown[string(domain.EngineTFIDF)])
	}
	if len(s.TopQueries) != 2 {
		t.Fatalf("top queries = %d, want 2", len(s.TopQueries))
	}
	if s.TopQueries[0].Query != "family movie" || s.TopQueries[0].Count != 2 {
		t.Errorf("top query = %+v", s.TopQueries[0])
	}
	if s.AvgLatencyMS == nil || *s.AvgLatencyMS != 20 {
		t.Errorf("avg latency = %v, want 20", s.AvgLatencyMS)
	}
}

func TestMemory_EmptySummary(t *testing.T) {
	m := NewMemory()

	s, err := m.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalSearches != 0 {
		t.Errorf("total = %d", s.TotalSearches)
	}
	if s.AvgLatencyMS != nil {
		t.Errorf("avg latency = %v, want nil with no samples", *s.AvgLatencyMS)
	}
	if len(s.TopQueries) != 0 {
		t.Errorf("top queries = %v", s.TopQueries)
	}
}

func TestMemory_Ping(t *testing.T) {
	if err := NewMemory().Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
