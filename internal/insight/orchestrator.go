// Package insight produces a structured, schema-constrained explanation
// for one (query, title) pair. Providers are tried in fixed priority
// order, each bounded by a timeout; output is validated centrally so the
// allow-list contract holds no matter which provider answered. The local
// heuristic generator terminates the chain and always succeeds, so
// GetInsight never fails the caller.
package insight

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
	"github.com/kailas-cloud/adscout/internal/metrics"
	"github.com/kailas-cloud/adscout/internal/rank"
)

// Provider is one upstream text-generation capability. Adapters handle
// transport and raw-response extraction only; validation lives here.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Orchestrator walks the provider chain for each request.
type Orchestrator struct {
	providers []Provider
	timeout   time.Duration
	logger    *zap.Logger
}

// NewOrchestrator creates an orchestrator. providers may be empty, in
// which case every request is served by the fallback generator.
func NewOrchestrator(providers []Provider, timeout time.Duration, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{providers: providers, timeout: timeout, logger: logger}
}

// GetInsight tries each provider once, with no intra-provider retries,
// so worst-case latency is bounded by the provider count times the
// timeout. When the chain is exhausted it falls back to the heuristic
// generator, so it never returns an error.
func (o *Orchestrator) GetInsight(ctx context.Context, query string, t domain.Title) domain.Insight {
	verticals := rank.SuggestVerticals(t.Genres, t.Rating)
	prompt := buildPrompt(query, t)

	for _, p := range o.providers {
		ins, err := o.attempt(ctx, p, prompt, t.Name)
		if err != nil {
			o.logger.Warn("provider attempt failed, advancing chain",
				zap.String("provider", p.Name()),
				zap.String("title", t.Name),
				zap.Error(err),
			)
			continue
		}
		metrics.InsightRequestsTotal.WithLabelValues(p.Name()).Inc()
		return ins
	}

	metrics.InsightRequestsTotal.WithLabelValues(domain.InsightSourceFallback).Inc()
	return fallbackInsight(t, verticals[0])
}

func (o *Orchestrator) attempt(ctx context.Context, p Provider, prompt, title string) (domain.Insight, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	raw, err := p.Generate(attemptCtx, prompt)
	metrics.ProviderRequestDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "error").Inc()
		return domain.Insight{}, err
	}

	ins, err := parseInsight(raw, title, p.Name())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "invalid").Inc()
		return domain.Insight{}, err
	}

	metrics.ProviderRequestsTotal.WithLabelValues(p.Name(), "success").Inc()
	return ins, nil
}
