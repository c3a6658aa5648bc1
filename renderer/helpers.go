// Package renderer turns analyses into markdown reports.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
)

// inr formats a rupee amount with the standard currency display.
func inr(v float64) string {
	return money.NewFromFloat(v, money.INR).Display()
}

// pct formats a fractional weight as a percentage with one decimal.
func pct(w float64) string {
	return fmt.Sprintf("%.1f%%", w*100)
}

// signedPct formats a percentage value (already ×100) keeping its sign.
func signedPct(p float64) string {
	return fmt.Sprintf("%+.1f%%", p)
}

// displayName turns a snake_case category key into a readable label, e.g.
// "large_cap_stocks" into "Large Cap Stocks".
func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// sortedKeysByValue orders map keys by descending value, ties by key.
func sortedKeysByValue(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
