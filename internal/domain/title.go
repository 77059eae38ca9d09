package domain

import "strings"

// ContentType classifies a catalog entry.
type ContentType string

const (
	// ContentTypeMovie is a feature-length title.
	ContentTypeMovie ContentType = "movie"
	// ContentTypeSeries is an episodic title.
	ContentTypeSeries ContentType = "series"
	// ContentTypeUnknown is used when the source data gives no signal.
	ContentTypeUnknown ContentType = "unknown"
)

// ParseContentType maps a raw string to a ContentType, defaulting to
// unknown. Matching is case-insensitive; source artifacts disagree on
// casing.
func ParseContentType(s string) ContentType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ContentTypeMovie):
		return ContentTypeMovie
	case string(ContentTypeSeries):
		return ContentTypeSeries
	default:
		return ContentTypeUnknown
	}
}

// RatingVocabulary is the fixed set of ratings the catalog may carry,
// ordered from most to least broadly advertiser-friendly.
var RatingVocabulary = []string{
	"TV-Y", "TV-Y7", "TV-Y7_FV", "TV-G", "G",
	"TV-PG", "PG", "PG-13", "TV-14", "R", "TV-MA",
}

// Title is one immutable catalog row. ID is the stable row index in
// catalog order; Combined is the normalized retrieval text computed once
// at load time.
type Title struct {
	ID             int
	Name           string
	Combined       string
	Genres         []string
	ContentType    ContentType
	Rating         string // empty = unrated
	ReleaseYear    *int
	RuntimeMinutes *int
	URL            string
	Persona        string
}
