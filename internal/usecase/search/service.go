// Package search implements the search operation: validate, retrieve
// relevance, rank under the caller's blend weight, and report which
// engine served the request.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
	"github.com/kailas-cloud/adscout/internal/metrics"
	"github.com/kailas-cloud/adscout/internal/rank"
)

// Service handles search requests over the shared immutable catalog and
// indices. Requests are independent, side-effect-free computations and
// run concurrently without locking.
type Service struct {
	catalog   Catalog
	retriever Retriever
	telemetry Recorder
	maxTopK   int
	logger    *zap.Logger
}

// New creates a search service.
func New(catalog Catalog, retriever Retriever, telemetry Recorder, maxTopK int, logger *zap.Logger) *Service {
	return &Service{
		catalog:   catalog,
		retriever: retriever,
		telemetry: telemetry,
		maxTopK:   maxTopK,
		logger:    logger,
	}
}

// Response is the ranked result set plus auditability metadata.
type Response struct {
	Results   []domain.ScoredTitle
	Engine    domain.EngineInfo
	LatencyMS int64
}

// Search executes one search request. Validation failures surface as
// domain.ErrInvalidArgument before any scoring; an empty result set is a
// valid response.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (Response, error) {
	if err := req.Validate(s.maxTopK); err != nil {
		return Response{}, err
	}

	start := time.Now()

	scores, engine := s.retriever.Retrieve(ctx, req.Query)
	results := rank.Rank(s.catalog.All(), scores, req.Alpha, req.Filters, req.TopK, req.IncludeDebug)

	latency := time.Since(start)
	metrics.SearchRequestsTotal.WithLabelValues(string(engine.Type)).Inc()
	metrics.SearchDuration.WithLabelValues(string(engine.Type)).Observe(latency.Seconds())

	// Best-effort; the recorder swallows its own failures.
	s.telemetry.RecordSearch(ctx, req.Query, engine.Type, latency)

	return Response{
		Results:   results,
		Engine:    engine,
		LatencyMS: latency.Milliseconds(),
	}, nil
}

// EngineInfo reports the engine that normally serves requests, for the
// health endpoint.
func (s *Service) EngineInfo() domain.EngineInfo {
	return s.retriever.Info()
}

// CatalogRows reports the loaded catalog size.
func (s *Service) CatalogRows() int {
	return s.catalog.Count()
}
