// Package catalog loads the precomputed title artifact into an immutable
// in-memory table. The artifact is produced by the data-prep pipeline;
// this package only parses and indexes it. Loading happens once at boot
// and a missing or unparsable artifact is fatal.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// row mirrors one record of the catalog parquet artifact.
type row struct {
	Title       string   `parquet:"title"`
	TitleURL    *string  `parquet:"title_url"`
	ReleaseYear *int32   `parquet:"release_year"`
	RuntimeRaw  *string  `parquet:"runtime_raw"`
	Rating      *string  `parquet:"rating"`
	Genres      []string `parquet:"genres,list"`
	ContentType *string  `parquet:"content_type"`
	Persona     *string  `parquet:"persona"`
}

// Store is the process-wide read-only title table. Safe for concurrent
// use without locking: nothing mutates it after Load returns.
type Store struct {
	titles []domain.Title
	byName map[string]int
	hash   string
}

// Load reads the parquet artifact and builds the store. Row order in the
// file defines title IDs and the catalog hash, so reloads of an unchanged
// file are byte-stable.
func Load(path string) (*Store, error) {
	rows, err := parquet.ReadFile[row](path)
	if err != nil {
		return nil, fmt.Errorf("read catalog artifact %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog artifact %s contains no rows", path)
	}

	s := &Store{
		titles: make([]domain.Title, 0, len(rows)),
		byName: make(map[string]int, len(rows)),
	}
	h := sha256.New()

	for i, r := range rows {
		t := buildTitle(i, r)
		s.titles = append(s.titles, t)

		// First occurrence wins for duplicate names, matching catalog order.
		key := strings.ToLower(t.Name)
		if _, ok := s.byName[key]; !ok {
			s.byName[key] = i
		}

		// Hash only the fields retrieval and ranking depend on.
		year := ""
		if t.ReleaseYear != nil {
			year = strconv.Itoa(*t.ReleaseYear)
		}
		fmt.Fprintf(h, "%s|%s|%s|%s|%s\n", t.Name, t.Combined, year, t.Rating, t.ContentType)
	}

	s.hash = hex.EncodeToString(h.Sum(nil))
	return s, nil
}

func buildTitle(id int, r row) domain.Title {
	name := normalizeWhitespace(r.Title)

	genres := make([]string, 0, len(r.Genres))
	for _, g := range r.Genres {
		if g = normalizeWhitespace(g); g != "" {
			genres = append(genres, g)
		}
	}

	t := domain.Title{
		ID:             id,
		Name:           name,
		Genres:         genres,
		Rating:         derefString(r.Rating),
		URL:            derefString(r.TitleURL),
		Persona:        derefString(r.Persona),
		RuntimeMinutes: ParseRuntimeMinutes(derefString(r.RuntimeRaw)),
	}

	if r.ReleaseYear != nil {
		y := int(*r.ReleaseYear)
		if y >= 1800 && y <= 2100 {
			t.ReleaseYear = &y
		}
	}

	if r.ContentType != nil && *r.ContentType != "" {
		t.ContentType = domain.ParseContentType(*r.ContentType)
	} else {
		t.ContentType = inferContentType(t.URL)
	}

	t.Combined = normalizeWhitespace(name + " " + strings.Join(genres, " "))
	return t
}

// All returns the titles in stable catalog order. Callers must not
// mutate the returned slice.
func (s *Store) All() []domain.Title { return s.titles }

// Count returns the number of catalog rows.
func (s *Store) Count() int { return len(s.titles) }

// Hash returns the content hash of the loaded catalog, used to check
// embedding artifacts for staleness.
func (s *Store) Hash() string { return s.hash }

// Get returns the title at the given row index.
func (s *Store) Get(id int) (domain.Title, bool) {
	if id < 0 || id >= len(s.titles) {
		return domain.Title{}, false
	}
	return s.titles[id], true
}

// FindByName looks a title up by its display name, case-insensitively.
func (s *Store) FindByName(name string) (domain.Title, bool) {
	i, ok := s.byName[strings.ToLower(normalizeWhitespace(name))]
	if !ok {
		return domain.Title{}, false
	}
	return s.titles[i], true
}

// Stats summarizes the catalog for the stats endpoint.
func (s *Store) Stats() domain.CatalogStats {
	stats := domain.CatalogStats{
		Rows:         len(s.titles),
		Ratings:      make(map[string]int),
		ContentTypes: make(map[string]int),
	}
	for _, t := range s.titles {
		rating := t.Rating
		if rating == "" {
			rating = "Unknown"
		}
		stats.Ratings[rating]++
		stats.ContentTypes[string(t.ContentType)]++

		if t.ReleaseYear == nil {
			continue
		}
		if stats.YearMin == nil || *t.ReleaseYear < *stats.YearMin {
			y := *t.ReleaseYear
			stats.YearMin = &y
		}
		if stats.YearMax == nil || *t.ReleaseYear > *stats.YearMax {
			y := *t.ReleaseYear
			stats.YearMax = &y
		}
	}
	return stats
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func inferContentType(url string) domain.ContentType {
	switch {
	case strings.Contains(url, "/series/"):
		return domain.ContentTypeSeries
	case strings.Contains(url, "/movies/"):
		return domain.ContentTypeMovie
	default:
		return domain.ContentTypeUnknown
	}
}
