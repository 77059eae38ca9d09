// Package chi is the HTTP layer: request decoding with defaults,
// handler wiring, and domain-error mapping. Handlers stay thin and
// delegate semantics to the usecase packages.
package chi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
	healthuc "github.com/kailas-cloud/adscout/internal/usecase/health"
	insightuc "github.com/kailas-cloud/adscout/internal/usecase/insight"
	searchuc "github.com/kailas-cloud/adscout/internal/usecase/search"
)

// CatalogStatter exposes catalog aggregates for the stats endpoint.
type CatalogStatter interface {
	Stats() domain.CatalogStats
}

// SummaryReader exposes the usage summary.
type SummaryReader interface {
	Summary(ctx context.Context) (domain.TelemetrySummary, error)
}

// Server wires the HTTP routes to the usecase services.
type Server struct {
	search    *searchuc.Service
	insights  *insightuc.Service
	health    *healthuc.Service
	catalog   CatalogStatter
	telemetry SummaryReader
	defaults  Defaults
	logger    *zap.Logger
}

// Defaults are applied to absent optional request fields before
// validation; explicit values are never clamped.
type Defaults struct {
	TopK  int
	Alpha float64
}

// NewServer creates the HTTP API server.
func NewServer(
	search *searchuc.Service,
	insights *insightuc.Service,
	health *healthuc.Service,
	catalog CatalogStatter,
	telemetry SummaryReader,
	defaults Defaults,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:    search,
		insights:  insights,
		health:    health,
		catalog:   catalog,
		telemetry: telemetry,
		defaults:  defaults,
		logger:    logger,
	}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/insights", s.handleInsight)
		r.Get("/catalog/stats", s.handleCatalogStats)
		r.Get("/telemetry/summary", s.handleTelemetrySummary)
	})
}

// --- Search ---

type filtersDTO struct {
	Ratings      []string `json:"ratings,omitempty"`
	YearMin      *int     `json:"year_min,omitempty"`
	YearMax      *int     `json:"year_max,omitempty"`
	ContentTypes []string `json:"content_types,omitempty"`
}

type searchRequestDTO struct {
	Query        string      `json:"query"`
	TopK         *int        `json:"top_k"`
	Alpha        *float64    `json:"alpha"`
	Filters      *filtersDTO `json:"filters"`
	IncludeDebug bool        `json:"include_debug"`
}

type titleResult struct {
	Title          string   `json:"title"`
	TitleURL       string   `json:"title_url,omitempty"`
	ReleaseYear    *int     `json:"release_year"`
	RuntimeMinutes *int     `json:"runtime_minutes"`
	Rating         string   `json:"rating,omitempty"`
	Genres         []string `json:"genres"`
	Persona        string   `json:"persona,omitempty"`
	ContentType    string   `json:"content_type"`

	RelevanceScore    float64 `json:"relevance_score"`
	MonetizationScore float64 `json:"monetization_score"`
	FinalScore        float64 `json:"final_score"`

	BrandSafety   domain.BrandSafety   `json:"brand_safety"`
	AdOpportunity domain.AdOpportunity `json:"ad_opportunity"`

	Debug map[string]any `json:"debug,omitempty"`
}

type searchResponseDTO struct {
	Query     string            `json:"query"`
	TopK      int               `json:"top_k"`
	Alpha     float64           `json:"alpha"`
	Filters   *filtersDTO       `json:"filters,omitempty"`
	Engine    domain.EngineInfo `json:"engine"`
	Results   []titleResult     `json:"results"`
	LatencyMS int64             `json:"latency_ms"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var dto searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	req := domain.SearchRequest{
		Query:        dto.Query,
		TopK:         s.defaults.TopK,
		Alpha:        s.defaults.Alpha,
		IncludeDebug: dto.IncludeDebug,
	}
	if dto.TopK != nil {
		req.TopK = *dto.TopK
	}
	if dto.Alpha != nil {
		req.Alpha = *dto.Alpha
	}
	if dto.Filters != nil {
		req.Filters = filtersFromDTO(dto.Filters)
	}

	resp, err := s.search.Search(r.Context(), req)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	results := make([]titleResult, len(resp.Results))
	for i, st := range resp.Results {
		results[i] = resultFromDomain(st)
	}

	writeJSON(w, http.StatusOK, searchResponseDTO{
		Query:     req.Query,
		TopK:      req.TopK,
		Alpha:     req.Alpha,
		Filters:   dto.Filters,
		Engine:    resp.Engine,
		Results:   results,
		LatencyMS: resp.LatencyMS,
	})
}

func filtersFromDTO(f *filtersDTO) *domain.Filters {
	out := &domain.Filters{
		Ratings: f.Ratings,
		YearMin: f.YearMin,
		YearMax: f.YearMax,
	}
	for _, ct := range f.ContentTypes {
		// Preserve unknown values so validation can name them.
		out.ContentTypes = append(out.ContentTypes, domain.ContentType(ct))
	}
	return out
}

func resultFromDomain(st domain.ScoredTitle) titleResult {
	return titleResult{
		Title:             st.Title.Name,
		TitleURL:          st.Title.URL,
		ReleaseYear:       st.Title.ReleaseYear,
		RuntimeMinutes:    st.Title.RuntimeMinutes,
		Rating:            st.Title.Rating,
		Genres:            st.Title.Genres,
		Persona:           st.Title.Persona,
		ContentType:       string(st.Title.ContentType),
		RelevanceScore:    st.Relevance,
		MonetizationScore: st.Monetization,
		FinalScore:        st.Final,
		BrandSafety:       st.BrandSafety,
		AdOpportunity:     st.AdOpportunity,
		Debug:             st.Debug,
	}
}

// --- Insights ---

type insightRequestDTO struct {
	Query string `json:"query"`
	Title string `json:"title"`
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	var dto insightRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	ins, err := s.insights.Insight(r.Context(), dto.Query, dto.Title)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ins)
}

// --- Health, stats, telemetry ---

type healthResponseDTO struct {
	Status      healthuc.Status                 `json:"status"`
	Engine      domain.EngineInfo               `json:"engine"`
	CatalogRows int                             `json:"catalog_rows"`
	Checks      map[string]healthuc.CheckResult `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, healthResponseDTO{
		Status:      report.Status,
		Engine:      s.search.EngineInfo(),
		CatalogRows: s.search.CatalogRows(),
		Checks:      report.Checks,
	})
}

func (s *Server) handleCatalogStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Stats())
}

func (s *Server) handleTelemetrySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.telemetry.Summary(r.Context())
	if err != nil {
		s.logger.Warn("telemetry summary failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "telemetry unavailable")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
