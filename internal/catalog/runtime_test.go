package catalog

import "testing"

func TestParseRuntimeMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"1 hr 38 min", intPtr(98)},
		{"2 hr", intPtr(120)},
		{"45 min", intPtr(45)},
		{"1hr 5min", intPtr(65)},
		{"1 HR 30 MIN", intPtr(90)},
		{"2 hrs 10 min", intPtr(130)},
		{"1\u00a0hr 38\u00a0min", intPtr(98)},
		{"", nil},
		{"0", nil},
		{"nan", nil},
		{"none", nil},
		{"0 min", nil},
		{"soon", nil},
		{"90 minutes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseRuntimeMinutes(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("ParseRuntimeMinutes(%q) = %d, want nil", tt.in, *got)
			case tt.want != nil && got == nil:
				t.Fatalf("ParseRuntimeMinutes(%q) = nil, want %d", tt.in, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("ParseRuntimeMinutes(%q) = %d, want %d", tt.in, *got, *tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  The   Movie  ", "The Movie"},
		{"Kids & Family", "Kids & Family"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeWhitespace(tt.in); got != tt.want {
			t.Errorf("normalizeWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func intPtr(v int) *int { return &v }
