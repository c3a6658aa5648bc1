package xfin

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyReplacer strips the currency symbols brokers like to prefix
// monetary cells with, together with thousands separators and quoting.
var currencyReplacer = strings.NewReplacer(
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
	`"`, "",
	"'", "",
)

var parenReplacer = strings.NewReplacer("(", "", ")", "")

// ParseValue converts a broker-formatted numeric string to a float64.
//
// It strips currency symbols (₹ $ € £), thousands separators, surrounding
// quotes and whitespace, and converts accounting-style parenthesized
// negatives ("(1,234.50)" becomes -1234.50). It never fails: any value that
// cannot be parsed, including empty strings and NaN markers, yields 0.0.
func ParseValue(raw string) float64 {
	v, _ := parseStrict(raw)
	return v
}

// parseStrict is ParseValue with an ok flag, used where the caller must
// distinguish "zero" from "not a number at all" (numeric column detection,
// salvage checks).
func parseStrict(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null", "na", "-":
		return 0, false
	}

	s = strings.TrimSpace(currencyReplacer.Replace(s))
	if strings.Contains(s, "(") && strings.Contains(s, ")") {
		s = "-" + parenReplacer.Replace(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}
