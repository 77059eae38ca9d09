// Package retrieval selects which scoring engine serves a request and
// reports its identity. Selection is a binary choice made at startup:
// embeddings when the encoder is configured and the artifact matches the
// live catalog, the lexical index otherwise. The two relevance sources
// are never blended; their scales are not comparable.
package retrieval

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Engine scores a query against every catalog row, returning relevance
// per row id in [0,1].
type Engine interface {
	Info() domain.EngineInfo
	Score(ctx context.Context, query string) (map[int]float64, error)
}

// Router routes each request to the primary engine, degrading to the
// fallback when the primary fails at request time. The fallback (the
// lexical index) never fails.
type Router struct {
	primary  Engine // nil when embeddings are unavailable
	fallback Engine
	logger   *zap.Logger
}

// NewRouter creates a router. primary may be nil.
func NewRouter(primary, fallback Engine, logger *zap.Logger) *Router {
	return &Router{primary: primary, fallback: fallback, logger: logger}
}

// Info returns the descriptor of the engine that will normally serve
// requests.
func (r *Router) Info() domain.EngineInfo {
	if r.primary != nil {
		return r.primary.Info()
	}
	return r.fallback.Info()
}

// Retrieve scores the query and reports which engine actually produced
// the scores. A transient primary failure downgrades only this request;
// the descriptor always names the engine that answered.
func (r *Router) Retrieve(ctx context.Context, query string) (map[int]float64, domain.EngineInfo) {
	if r.primary != nil {
		scores, err := r.primary.Score(ctx, query)
		if err == nil {
			return scores, r.primary.Info()
		}
		r.logger.Warn("primary engine failed, serving request from lexical index",
			zap.String("engine", string(r.primary.Info().Type)),
			zap.Error(err),
		)
	}

	scores, _ := r.fallback.Score(ctx, query) // lexical scoring cannot fail
	return scores, r.fallback.Info()
}
