package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	runtimeRe    = regexp.MustCompile(`(?i)^(?:(\d+)\s*hr?s?)?\s*(?:(\d+)\s*min)?$`)
)

// normalizeWhitespace collapses runs of whitespace (including non-breaking
// spaces) into single spaces and trims the ends.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ParseRuntimeMinutes parses source runtime text like "1 hr 38 min" or
// "45 min" into total minutes. Unparsable or zero input yields nil;
// runtimes are never fabricated.
func ParseRuntimeMinutes(raw string) *int {
	s := strings.ToLower(normalizeWhitespace(raw))
	if s == "" || s == "0" || s == "nan" || s == "none" {
		return nil
	}

	m := runtimeRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	total := hours*60 + minutes
	if total <= 0 {
		return nil
	}
	return &total
}
