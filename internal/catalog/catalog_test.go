package catalog

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/kailas-cloud/adscout/internal/domain"
)

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }

func writeFixture(t *testing.T, rows []row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "titles.parquet")
	if err := parquet.WriteFile(path, rows); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func fixtureRows() []row {
	return []row{
		{
			Title:       "Road  Trip",
			TitleURL:    strPtr("https://example.com/movies/road-trip"),
			ReleaseYear: i32Ptr(2021),
			RuntimeRaw:  strPtr("1 hr 40 min"),
			Rating:      strPtr("PG"),
			Genres:      []string{"Comedy", "Adventure"},
			Persona:     strPtr("weekend watcher"),
		},
		{
			Title:       "Cartoon Capers",
			TitleURL:    strPtr("https://example.com/series/cartoon-capers"),
			Rating:      strPtr("TV-Y"),
			Genres:      []string{"Kids & Family"},
			ContentType: strPtr("series"),
		},
		{
			Title:  "Cartoon Capers",
			Rating: strPtr("TV-MA"),
			Genres: []string{"Horror"},
		},
	}
}

func TestLoad(t *testing.T) {
	s, err := Load(writeFixture(t, fixtureRows()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 3 {
		t.Fatalf("expected 3 titles, got %d", s.Count())
	}

	first, ok := s.Get(0)
	if !ok {
		t.Fatal("title 0 missing")
	}
	if first.Name != "Road Trip" {
		t.Errorf("name = %q, whitespace not normalized", first.Name)
	}
	if first.RuntimeMinutes == nil || *first.RuntimeMinutes != 100 {
		t.Errorf("runtime = %v, want 100", first.RuntimeMinutes)
	}
	if first.ReleaseYear == nil || *first.ReleaseYear != 2021 {
		t.Errorf("release year = %v, want 2021", first.ReleaseYear)
	}
	// No content_type column value; the URL carries the signal.
	if first.ContentType != domain.ContentTypeMovie {
		t.Errorf("content type = %q, want movie (inferred from URL)", first.ContentType)
	}
	if first.Combined != "Road Trip Comedy Adventure" {
		t.Errorf("combined = %q", first.Combined)
	}
	if first.Persona != "weekend watcher" {
		t.Errorf("persona = %q", first.Persona)
	}

	second, _ := s.Get(1)
	if second.ContentType != domain.ContentTypeSeries {
		t.Errorf("explicit content type lost: %q", second.ContentType)
	}

	third, _ := s.Get(2)
	if third.ContentType != domain.ContentTypeUnknown {
		t.Errorf("content type = %q, want unknown without URL or column", third.ContentType)
	}
	if third.ReleaseYear != nil {
		t.Errorf("release year = %v, want nil", third.ReleaseYear)
	}
}

func TestLoad_EmptyArtifactFails(t *testing.T) {
	if _, err := Load(writeFixture(t, []row{})); err == nil {
		t.Fatal("expected error for empty artifact")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.parquet")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestHash_StableAcrossReloads(t *testing.T) {
	path := writeFixture(t, fixtureRows())

	a, err := Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("hash changed across reloads: %s vs %s", a.Hash(), b.Hash())
	}
	if a.Hash() == "" {
		t.Fatal("hash is empty")
	}
}

func TestHash_ChangesWithContent(t *testing.T) {
	a, err := Load(writeFixture(t, fixtureRows()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	changed := fixtureRows()
	changed[0].Rating = strPtr("R")
	b, err := Load(writeFixture(t, changed))
	if err != nil {
		t.Fatalf("load changed: %v", err)
	}

	if a.Hash() == b.Hash() {
		t.Fatal("hash identical despite changed rating")
	}
}

func TestFindByName(t *testing.T) {
	s, err := Load(writeFixture(t, fixtureRows()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got, ok := s.FindByName("cartoon capers")
	if !ok {
		t.Fatal("case-insensitive lookup failed")
	}
	// Duplicate names resolve to the first catalog occurrence.
	if got.ID != 1 {
		t.Fatalf("got title %d, want first occurrence 1", got.ID)
	}

	if _, ok := s.FindByName("No Such Title"); ok {
		t.Fatal("unexpected hit for unknown title")
	}
}

func TestStats(t *testing.T) {
	s, err := Load(writeFixture(t, fixtureRows()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	stats := s.Stats()
	if stats.Rows != 3 {
		t.Errorf("rows = %d, want 3", stats.Rows)
	}
	if stats.Ratings["PG"] != 1 || stats.Ratings["TV-Y"] != 1 || stats.Ratings["TV-MA"] != 1 {
		t.Errorf("ratings breakdown wrong: %v", stats.Ratings)
	}
	if stats.YearMin == nil || *stats.YearMin != 2021 {
		t.Errorf("year min = %v, want 2021", stats.YearMin)
	}
	if stats.YearMax == nil || *stats.YearMax != 2021 {
		t.Errorf("year max = %v, want 2021", stats.YearMax)
	}
	if stats.ContentTypes["series"] != 1 {
		t.Errorf("content types breakdown wrong: %v", stats.ContentTypes)
	}
}
