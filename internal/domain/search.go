package domain

// EngineType identifies which retrieval algorithm produced a ranking.
type EngineType string

const (
	// EngineEmbeddings is the dense-vector similarity engine.
	EngineEmbeddings EngineType = "embeddings"
	// EngineTFIDF is the keyword-overlap fallback engine.
	EngineTFIDF EngineType = "tfidf"
)

// EngineInfo is the auditability descriptor attached to every search
// response. Model and DataHash are set only for the embeddings engine.
type EngineInfo struct {
	Type     EngineType `json:"type"`
	Model    string     `json:"model,omitempty"`
	DataHash string     `json:"data_hash,omitempty"`
}

// Filters are the structural constraints applied before scoring.
// A candidate failing any active filter is excluded entirely.
type Filters struct {
	Ratings      []string      `json:"ratings,omitempty"`
	YearMin      *int          `json:"year_min,omitempty"`
	YearMax      *int          `json:"year_max,omitempty"`
	ContentTypes []ContentType `json:"content_types,omitempty"`
}

// SearchRequest is a fully resolved search input. Defaults are applied
// at the transport boundary; Validate rejects out-of-range values
// instead of clamping them.
type SearchRequest struct {
	Query        string
	TopK         int
	Alpha        float64
	Filters      *Filters
	IncludeDebug bool
}

// MaxQueryLen bounds query text length.
const MaxQueryLen = 200

// Validate checks request bounds. maxTopK is the configured upper limit.
func (r SearchRequest) Validate(maxTopK int) error {
	if r.Query == "" {
		return NewFieldError("query", "must not be empty")
	}
	if len(r.Query) > MaxQueryLen {
		return NewFieldError("query", "too long")
	}
	if r.TopK <= 0 {
		return NewFieldError("top_k", "must be positive")
	}
	if r.TopK > maxTopK {
		return NewFieldError("top_k", "exceeds maximum")
	}
	if r.Alpha < 0 || r.Alpha > 1 {
		return NewFieldError("alpha", "must be within [0,1]")
	}
	if f := r.Filters; f != nil {
		for _, ct := range f.ContentTypes {
			switch ct {
			case ContentTypeMovie, ContentTypeSeries, ContentTypeUnknown:
			default:
				return NewFieldError("filters.content_types", "unknown content type "+string(ct))
			}
		}
		if f.YearMin != nil && f.YearMax != nil && *f.YearMin > *f.YearMax {
			return NewFieldError("filters.year_min", "greater than year_max")
		}
	}
	return nil
}

// RiskLevel is the brand-safety risk classification.
type RiskLevel string

const (
	// RiskLow marks broadly brand-safe content.
	RiskLow RiskLevel = "low"
	// RiskMedium marks content needing advertiser review.
	RiskMedium RiskLevel = "medium"
	// RiskHigh marks advertiser-sensitive content.
	RiskHigh RiskLevel = "high"
)

// BrandSafety is the explainable heuristic classification of a title.
type BrandSafety struct {
	Tier  string    `json:"tier"`
	Risk  RiskLevel `json:"risk"`
	Notes []string  `json:"notes"`
}

// AdOpportunity suggests contextual advertiser fits for a title.
type AdOpportunity struct {
	PrimaryVertical    string   `json:"primary_vertical"`
	SecondaryVerticals []string `json:"secondary_verticals"`
	Rationale          string   `json:"rationale"`
}

// ScoredTitle is one ranked candidate. Constructed fresh per request;
// scores depend on the query and are never cached.
type ScoredTitle struct {
	Title Title

	Relevance    float64
	Monetization float64
	Final        float64

	BrandSafety   BrandSafety
	AdOpportunity AdOpportunity

	Debug map[string]any // populated only when the request asks for it
}

// CatalogStats summarizes the loaded catalog for the stats endpoint.
type CatalogStats struct {
	Rows         int            `json:"rows"`
	Ratings      map[string]int `json:"ratings"`
	ContentTypes map[string]int `json:"content_types"`
	YearMin      *int           `json:"year_min"`
	YearMax      *int           `json:"year_max"`
}
