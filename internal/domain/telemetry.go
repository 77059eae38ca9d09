package domain

// QueryCount is one entry in the top-queries breakdown.
type QueryCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// TelemetrySummary aggregates best-effort usage counters.
type TelemetrySummary struct {
	TotalSearches   int64            `json:"total_searches"`
	TopQueries      []QueryCount     `json:"top_queries"`
	AvgLatencyMS    *float64         `json:"avg_latency_ms"`
	EngineBreakdown map[string]int64 `json:"engine_breakdown"`
}
