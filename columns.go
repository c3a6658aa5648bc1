package xfin

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// dateColRegex detects date-like column headers such as "2025-10-25",
// "25-10-2025" or "Oct 25, 2025".
var dateColRegex = regexp.MustCompile(`^\s*(\d{4}[-/]\d{2}[-/]\d{2}|\d{2}[-/]\d{2}[-/]\d{4}|\w{3,9}\s+\d{1,2},?\s*\d{4})\s*$`)

// dateHeaderFormats are tried in order when parsing a date-like header.
var dateHeaderFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"2 January 2006",
}

// FindColumn resolves a logical column role against the available columns.
//
// Patterns are tried in priority order: first an exact case-insensitive
// match, then a substring match in either direction (pattern in column or
// column in pattern). The first hit wins; there is no scoring, so callers
// must order patterns most-specific-first.
func FindColumn(columns []string, patterns ...string) (string, bool) {
	for _, pattern := range patterns {
		p := strings.ToLower(strings.TrimSpace(pattern))
		if p == "" {
			continue
		}
		for _, col := range columns {
			if strings.ToLower(strings.TrimSpace(col)) == p {
				return col, true
			}
		}
		for _, col := range columns {
			c := strings.ToLower(strings.TrimSpace(col))
			if c == "" {
				continue
			}
			if strings.Contains(c, p) || strings.Contains(p, c) {
				return col, true
			}
		}
	}
	return "", false
}

// DetectPriceColumns returns the columns that look like they carry price
// data: date-formatted headers and "prev close" style labels.
//
// Headers with parseable dates are sorted most-recent first; date-like but
// unparseable headers are appended afterwards in discovery order.
func DetectPriceColumns(columns []string) []string {
	type candidate struct {
		col   string
		label string
	}
	var candidates []candidate

	for _, col := range columns {
		s := strings.TrimSpace(col)
		low := strings.ToLower(s)

		if dateColRegex.MatchString(s) {
			candidates = append(candidates, candidate{col, s})
			continue
		}
		if strings.Contains(low, "prev") && (strings.Contains(low, "close") || strings.Contains(low, "price")) {
			candidates = append(candidates, candidate{col, s})
			continue
		}
		if strings.Contains(low, "previous") && (strings.Contains(low, "close") || strings.Contains(low, "price")) {
			candidates = append(candidates, candidate{col, s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	type parsedCol struct {
		at  time.Time
		col string
	}
	var parsed []parsedCol
	var unparsed []string

	for _, c := range candidates {
		if at, ok := parseHeaderDate(c.label); ok {
			parsed = append(parsed, parsedCol{at, c.col})
		} else {
			unparsed = append(unparsed, c.col)
		}
	}

	// Oldest first, then reversed so that the most recent date comes first.
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].at.Before(parsed[j].at) })

	result := make([]string, 0, len(candidates))
	for i := len(parsed) - 1; i >= 0; i-- {
		result = append(result, parsed[i].col)
	}
	return append(result, unparsed...)
}

func parseHeaderDate(s string) (time.Time, bool) {
	for _, format := range dateHeaderFormats {
		if at, err := time.Parse(format, s); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}
