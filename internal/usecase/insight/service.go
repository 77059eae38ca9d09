// Package insight implements the insight operation: resolve the title's
// catalog context and run the provider chain.
package insight

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Service handles insight requests.
type Service struct {
	titles    TitleFinder
	generator Generator
	telemetry Recorder
}

// New creates an insight service.
func New(titles TitleFinder, generator Generator, telemetry Recorder) *Service {
	return &Service{titles: titles, generator: generator, telemetry: telemetry}
}

// Insight resolves the title and produces its insight. The only error
// paths are input validation and an unknown title; once a title context
// exists the result is always a well-formed insight.
func (s *Service) Insight(ctx context.Context, query, titleName string) (domain.Insight, error) {
	if query == "" {
		return domain.Insight{}, domain.NewFieldError("query", "must not be empty")
	}
	if len(query) > domain.MaxQueryLen {
		return domain.Insight{}, domain.NewFieldError("query", "too long")
	}
	if titleName == "" {
		return domain.Insight{}, domain.NewFieldError("title", "must not be empty")
	}

	t, ok := s.titles.FindByName(titleName)
	if !ok {
		return domain.Insight{}, fmt.Errorf("%q: %w", titleName, domain.ErrTitleNotFound)
	}

	ins := s.generator.GetInsight(ctx, query, t)
	s.telemetry.RecordInsight(ctx, ins.Title, ins.Source)
	return ins, nil
}
