package domain

import (
	"errors"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestSearchRequestValidate(t *testing.T) {
	valid := SearchRequest{Query: "family movie night", TopK: 5, Alpha: 0.8}

	tests := []struct {
		name      string
		mutate    func(r *SearchRequest)
		wantField string
	}{
		{"valid", func(r *SearchRequest) {}, ""},
		{"alpha zero is valid", func(r *SearchRequest) { r.Alpha = 0 }, ""},
		{"alpha one is valid", func(r *SearchRequest) { r.Alpha = 1 }, ""},
		{"empty query", func(r *SearchRequest) { r.Query = "" }, "query"},
		{"overlong query", func(r *SearchRequest) { r.Query = strings.Repeat("x", MaxQueryLen+1) }, "query"},
		{"zero top_k", func(r *SearchRequest) { r.TopK = 0 }, "top_k"},
		{"negative top_k", func(r *SearchRequest) { r.TopK = -1 }, "top_k"},
		{"top_k over max", func(r *SearchRequest) { r.TopK = 21 }, "top_k"},
		{"alpha below zero", func(r *SearchRequest) { r.Alpha = -0.1 }, "alpha"},
		{"alpha above one", func(r *SearchRequest) { r.Alpha = 1.1 }, "alpha"},
		{
			"unknown content type",
			func(r *SearchRequest) {
				r.Filters = &Filters{ContentTypes: []ContentType{"podcast"}}
			},
			"filters.content_types",
		},
		{
			"inverted year range",
			func(r *SearchRequest) {
				r.Filters = &Filters{YearMin: intPtr(2020), YearMax: intPtr(2010)}
			},
			"filters.year_min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate(20)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error %v does not wrap ErrInvalidArgument", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a FieldError", err)
			}
			if fe.Field != tt.wantField {
				t.Fatalf("field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestIsAllowedVertical(t *testing.T) {
	if !IsAllowedVertical("CPG") {
		t.Error("CPG should be allowed")
	}
	if !IsAllowedVertical("Health & Wellness") {
		t.Error("Health & Wellness should be allowed")
	}
	if IsAllowedVertical("Crypto") {
		t.Error("Crypto should not be allowed")
	}
	if IsAllowedVertical("") {
		t.Error("empty vertical should not be allowed")
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
	}{
		{"movie", ContentTypeMovie},
		{"Movie", ContentTypeMovie},
		{"series", ContentTypeSeries},
		{"SERIES", ContentTypeSeries},
		{"", ContentTypeUnknown},
		{"short", ContentTypeUnknown},
	}
	for _, tt := range tests {
		if got := ParseContentType(tt.in); got != tt.want {
			t.Errorf("ParseContentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
