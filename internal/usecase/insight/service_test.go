package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// --- Mocks ---

type mockFinder struct {
	titles map[string]domain.Title
}

func (m *mockFinder) FindByName(name string) (domain.Title, bool) {
	t, ok := m.titles[strings.ToLower(name)]
	return t, ok
}

type mockGenerator struct {
	insight domain.Insight
	calls   int
}

func (m *mockGenerator) GetInsight(_ context.Context, _ string, _ domain.Title) domain.Insight {
	m.calls++
	return m.insight
}

type mockRecorder struct {
	titles  []string
	sources []string
}

func (m *mockRecorder) RecordInsight(_ context.Context, title, source string) {
	m.titles = append(m.titles, title)
	m.sources = append(m.sources, source)
}

func newTestService(gen *mockGenerator, rec *mockRecorder) *Service {
	finder := &mockFinder{titles: map[string]domain.Title{
		"road trip": {ID: 2, Name: "Road Trip", Genres: []string{"Comedy"}},
	}}
	return New(finder, gen, rec)
}

// --- Tests ---

func TestInsight(t *testing.T) {
	gen := &mockGenerator{insight: domain.Insight{
		Title: "Road Trip", Hook: "h", AdStrategy: "s",
		AdvertiserVertical: "QSR", Source: "gateway",
	}}
	rec := &mockRecorder{}
	svc := newTestService(gen, rec)

	ins, err := svc.Insight(context.Background(), "funny movie", "Road Trip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ins.Source != "gateway" {
		t.Errorf("source = %q", ins.Source)
	}
	if len(rec.titles) != 1 || rec.titles[0] != "Road Trip" || rec.sources[0] != "gateway" {
		t.Errorf("telemetry not recorded: %v / %v", rec.titles, rec.sources)
	}
}

func TestInsight_UnknownTitle(t *testing.T) {
	gen := &mockGenerator{}
	svc := newTestService(gen, &mockRecorder{})

	_, err := svc.Insight(context.Background(), "q", "No Such Title")
	if !errors.Is(err, domain.ErrTitleNotFound) {
		t.Fatalf("error = %v, want ErrTitleNotFound", err)
	}
	if gen.calls != 0 {
		t.Error("generator invoked for unknown title")
	}
}

func TestInsight_Validation(t *testing.T) {
	svc := newTestService(&mockGenerator{}, &mockRecorder{})

	tests := []struct {
		name  string
		query string
		title string
	}{
		{"empty query", "", "Road Trip"},
		{"overlong query", strings.Repeat("x", domain.MaxQueryLen+1), "Road Trip"},
		{"empty title", "q", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Insight(context.Background(), tt.query, tt.title)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
