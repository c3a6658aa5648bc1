package xfin

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Role patterns are ordered most-specific-first; FindColumn stops at the
// first exact or substring hit.
var (
	namePatterns     = []string{"company", "stock name", "security name", "name", "scrip", "security"}
	symbolPatterns   = []string{"symbol", "ticker", "scrip code", "nse symbol", "bse symbol", "trading symbol"}
	isinPatterns     = []string{"isin", "isin code", "isin number"}
	valuePatterns    = []string{"invested value", "current value", "closing value", "market value", "buy value", "value"}
	quantityPatterns = []string{"quantity", "qty"}
	avgPricePatterns = []string{"average buy price", "avg trading price", "average price", "buy price"}
	closePatterns    = []string{"closing price", "prev closing price", "last price", "ltp"}
)

// blankMarkers are cell values that mean "no data" once lowercased.
var blankMarkers = map[string]bool{
	"": true, "nan": true, "none": true, "null": true, "na": true,
}

// ColumnRoleMap is the resolved mapping from logical roles to actual column
// names of one input table. Built once per table, read-only afterwards; an
// empty string means the role was not resolved.
type ColumnRoleMap struct {
	Name     string
	Symbol   string
	ISIN     string
	Value    string
	Quantity string
	AvgPrice string
	Close    string

	// PriceColumns are date-formatted or prev-close columns, most recent
	// first.
	PriceColumns []string
}

func (m ColumnRoleMap) hasIdentity() bool {
	return m.Name != "" || m.Symbol != "" || m.ISIN != ""
}

func (m ColumnRoleMap) hasValueSource() bool {
	if m.Value != "" {
		return true
	}
	if m.Quantity != "" && (m.AvgPrice != "" || m.Close != "" || len(m.PriceColumns) > 0) {
		return true
	}
	return false
}

// Ingester turns raw tables into holdings, salvaging rows with missing
// identity fields where possible and accumulating diagnostics.
type Ingester struct {
	log zerolog.Logger
}

// NewIngester returns an ingester logging salvage and skip events to log.
// Pass zerolog.Nop() to silence it.
func NewIngester(log zerolog.Logger) *Ingester {
	return &Ingester{log: log}
}

// ResolveRoles maps logical roles onto the table's actual columns.
func (in *Ingester) ResolveRoles(t *Table) ColumnRoleMap {
	var m ColumnRoleMap
	m.Name, _ = FindColumn(t.Columns, namePatterns...)
	m.Symbol, _ = FindColumn(t.Columns, symbolPatterns...)
	m.ISIN, _ = FindColumn(t.Columns, isinPatterns...)
	m.Value, _ = FindColumn(t.Columns, valuePatterns...)
	m.Quantity, _ = FindColumn(t.Columns, quantityPatterns...)
	m.AvgPrice, _ = FindColumn(t.Columns, avgPricePatterns...)
	m.Close, _ = FindColumn(t.Columns, closePatterns...)
	m.PriceColumns = DetectPriceColumns(t.Columns)
	return m
}

// Ingest extracts holdings from the table.
//
// Rows with a missing name fall back to symbol, then an ISIN-shaped cell,
// then a synthetic name when the row still holds meaningful numeric data; rows with no
// identity and no numbers are skipped and reported in the diagnostics.
// Ingest fails only when the table resolves neither an identity column nor
// any value source at all, which is distinct from a valid but empty
// portfolio.
func (in *Ingester) Ingest(t *Table) ([]Holding, *Diagnostics, error) {
	roles := in.ResolveRoles(t)
	if !roles.hasIdentity() && !roles.hasValueSource() {
		return nil, nil, ErrNoUsableColumns
	}

	numericCols := t.NumericColumns()

	var holdings []Holding
	var skipped []SkippedRow
	for i, row := range t.Rows {
		h, reason := in.extract(row, roles, numericCols)
		if h == nil {
			skipped = append(skipped, SkippedRow{Index: i, Reason: reason})
			in.log.Debug().Int("row", i).Str("reason", reason).Msg("row skipped")
			continue
		}
		holdings = append(holdings, *h)
	}

	return holdings, NewDiagnostics(holdings, len(t.Rows), skipped), nil
}

// extract pulls one holding out of a row, or explains why it cannot.
func (in *Ingester) extract(row Row, roles ColumnRoleMap, numericCols []string) (*Holding, string) {
	name := cleanIdentifier(cell(row, roles.Name))
	symbol := cleanIdentifier(cell(row, roles.Symbol))
	isin := cleanIdentifier(cell(row, roles.ISIN))

	reason := SalvageNone
	if name == "" && symbol != "" {
		name = symbol
		reason = SalvageUsedSymbol
		in.log.Info().Str("symbol", symbol).Msg("salvaged row using symbol")
	}
	if name == "" && LooksLikeISIN(isin) {
		name = isin
		reason = SalvageUsedISIN
		in.log.Info().Str("isin", isin).Msg("salvaged row using ISIN")
	}
	if name == "" {
		// Last resort: a row with meaningful numeric data still counts,
		// under a synthetic name.
		meaningful := false
		for _, col := range numericCols {
			if v, ok := parseStrict(row[col]); ok && v != 0 {
				meaningful = true
				break
			}
		}
		if meaningful {
			switch {
			case symbol != "":
				name = "Unknown-" + symbol
			case LooksLikeISIN(isin):
				name = "Unknown-" + prefix(isin, 8)
			default:
				name = "Unknown (salvaged row)"
			}
			reason = SalvageNumeric
			in.log.Warn().Str("name", name).Msg("salvaged row with numeric data")
		}
	}
	if name == "" {
		return nil, "no usable identity or numeric data"
	}

	value, source := in.holdingValue(row, roles)
	return &Holding{
		DisplayName: name,
		Symbol:      symbol,
		ISIN:        isin,
		Value:       value,
		Quantity:    ParseValue(cell(row, roles.Quantity)),
		AvgPrice:    ParseValue(cell(row, roles.AvgPrice)),
		ValueSource: source,
		Salvage:     reason,
	}, ""
}

// holdingValue derives the monetary value of a row. Calculated values take
// priority over direct value columns: invested value (quantity times average
// buy price), then current value (quantity times closing price), then the
// resolved value column, then the most recent date-price column times
// quantity.
func (in *Ingester) holdingValue(row Row, roles ColumnRoleMap) (float64, string) {
	qty, qtyOK := parseStrict(cell(row, roles.Quantity))

	if qtyOK && roles.AvgPrice != "" {
		if avg, ok := parseStrict(cell(row, roles.AvgPrice)); ok {
			return mulExact(qty, avg), "Invested Value"
		}
	}
	if qtyOK && roles.Close != "" {
		if close, ok := parseStrict(cell(row, roles.Close)); ok {
			return mulExact(qty, close), "Current Value"
		}
	}
	if roles.Value != "" {
		return ParseValue(cell(row, roles.Value)), roles.Value
	}
	if qtyOK {
		for _, col := range roles.PriceColumns {
			if price, ok := parseStrict(row[col]); ok {
				return mulExact(qty, price), col
			}
		}
	}
	return 0, "unknown"
}

// mulExact multiplies through decimals so 0.1-style representation noise
// does not leak into portfolio totals.
func mulExact(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).InexactFloat64()
}

func cell(row Row, col string) string {
	if col == "" {
		return ""
	}
	return row[col]
}

// cleanIdentifier trims a cell and collapses the usual "no data" markers to
// the empty string.
func cleanIdentifier(s string) string {
	s = strings.TrimSpace(s)
	if blankMarkers[strings.ToLower(s)] {
		return ""
	}
	return s
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
