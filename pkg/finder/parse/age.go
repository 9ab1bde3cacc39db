// Package parse converts free-form shelter attribute strings into
// canonical typed values. Every parser is total: input it cannot
// interpret yields the documented unknown/zero result, never an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Conversion constants for age units, in weeks. These are exact contract
// values shared with downstream age-range rules; do not recompute them.
const (
	WeeksPerYear  = 52.143
	WeeksPerMonth = 4.345
	WeeksPerDay   = 1.0 / 7.0
)

var agePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(year|month|week|day)s?`)

// AgeToWeeks parses an age string such as "2 years", "6 months",
// "3 weeks" or "14 days" into a week count. Matching is case-insensitive,
// surrounding whitespace is ignored, and both singular and plural units
// are accepted. It returns ok=false for non-string input, strings that do
// not match "<number> <unit>", and non-positive magnitudes.
func AgeToWeeks(raw any) (float64, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	m := agePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	switch m[2] {
	case "year":
		return value * WeeksPerYear, true
	case "month":
		return value * WeeksPerMonth, true
	case "week":
		return value, true
	case "day":
		return value * WeeksPerDay, true
	}
	return 0, false
}
