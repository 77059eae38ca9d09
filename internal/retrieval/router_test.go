package retrieval

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// --- Mocks ---

type mockEngine struct {
	info   domain.EngineInfo
	scores map[int]float64
	err    error
	calls  int
}

func (m *mockEngine) Info() domain.EngineInfo { return m.info }

func (m *mockEngine) Score(_ context.Context, _ string) (map[int]float64, error) {
	m.calls++
	return m.scores, m.err
}

func embeddingsEngine() *mockEngine {
	return &mockEngine{
		info:   domain.EngineInfo{Type: domain.EngineEmbeddings, Model: "m", DataHash: "h"},
		scores: map[int]float64{0: 0.9},
	}
}

func lexicalEngine() *mockEngine {
	return &mockEngine{
		info:   domain.EngineInfo{Type: domain.EngineTFIDF},
		scores: map[int]float64{0: 0.4},
	}
}

// --- Tests ---

func TestRetrieve_PrimaryServes(t *testing.T) {
	primary := embeddingsEngine()
	fallback := lexicalEngine()
	r := NewRouter(primary, fallback, zap.NewNop())

	scores, info := r.Retrieve(context.Background(), "q")
	if info.Type != domain.EngineEmbeddings {
		t.Fatalf("engine = %q, want embeddings", info.Type)
	}
	if scores[0] != 0.9 {
		t.Fatalf("score = %v, want primary's 0.9", scores[0])
	}
	if fallback.calls != 0 {
		t.Error("fallback consulted although primary succeeded")
	}
}

func TestRetrieve_DegradesPerRequest(t *testing.T) {
	primary := embeddingsEngine()
	primary.err = errors.New("encoder down")
	fallback := lexicalEngine()
	r := NewRouter(primary, fallback, zap.NewNop())

	scores, info := r.Retrieve(context.Background(), "q")
	if info.Type != domain.EngineTFIDF {
		t.Fatalf("engine = %q, descriptor must name the engine that answered", info.Type)
	}
	if scores[0] != 0.4 {
		t.Fatalf("score = %v, want fallback's 0.4", scores[0])
	}

	// Recovery: the next request goes back to the primary.
	primary.err = nil
	_, info = r.Retrieve(context.Background(), "q")
	if info.Type != domain.EngineEmbeddings {
		t.Fatal("primary not retried after transient failure")
	}
}

func TestRetrieve_NoPrimary(t *testing.T) {
	fallback := lexicalEngine()
	r := NewRouter(nil, fallback, zap.NewNop())

	_, info := r.Retrieve(context.Background(), "q")
	if info.Type != domain.EngineTFIDF {
		t.Fatalf("engine = %q, want tfidf", info.Type)
	}
	if r.Info().Type != domain.EngineTFIDF {
		t.Fatal("Info() must describe the fallback when no primary exists")
	}
}

func TestInfo_PrefersPrimary(t *testing.T) {
	r := NewRouter(embeddingsEngine(), lexicalEngine(), zap.NewNop())
	if r.Info().Type != domain.EngineEmbeddings {
		t.Fatal("Info() must describe the primary engine when configured")
	}
}
