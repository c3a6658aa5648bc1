package xfin

// SalvageReason records how a holding's identity was recovered when the
// primary name field was missing or invalid.
type SalvageReason string

const (
	// SalvageNone means the name column carried a usable value.
	SalvageNone SalvageReason = ""
	// SalvageUsedSymbol means the symbol stood in for the missing name.
	SalvageUsedSymbol SalvageReason = "used_symbol"
	// SalvageUsedISIN means the ISIN stood in for the missing name.
	SalvageUsedISIN SalvageReason = "used_isin"
	// SalvageNumeric means the row had no identity at all but carried
	// meaningful numeric data, so a synthetic name was generated.
	SalvageNumeric SalvageReason = "salvaged_numeric"
)

// Holding is one portfolio line item, created once per input row during
// ingestion and immutable afterwards.
//
// A Holding is only constructed when it has a non-empty DisplayName and a
// finite Value; rows failing both identity and value checks are dropped by
// the ingester, not defaulted.
type Holding struct {
	DisplayName string
	Symbol      string
	ISIN        string
	Value       float64
	Quantity    float64
	AvgPrice    float64

	// ValueSource names the column (or derivation) the Value came from,
	// e.g. "Invested Value" when computed from quantity and average price.
	ValueSource string
	Salvage     SalvageReason
}

// SkippedRow describes a row the ingester could not salvage.
type SkippedRow struct {
	Index  int
	Reason string
}

// Diagnostics summarizes an ingestion run: how many rows were read,
// processed, salvaged and skipped, broken down by salvage reason and by the
// column each holding's value came from.
type Diagnostics struct {
	RowsRead      int
	RowsProcessed int
	RowsSalvaged  int
	RowsSkipped   int

	SalvageBreakdown     map[string]int
	ValueSourceBreakdown map[string]int
	Skipped              []SkippedRow
}

// NewDiagnostics builds a diagnostics report from the outcome of a batch of
// rows. rowsRead is the number of data rows in the original table.
func NewDiagnostics(holdings []Holding, rowsRead int, skipped []SkippedRow) *Diagnostics {
	d := &Diagnostics{
		RowsRead:             rowsRead,
		RowsProcessed:        len(holdings),
		RowsSkipped:          len(skipped),
		SalvageBreakdown:     make(map[string]int),
		ValueSourceBreakdown: make(map[string]int),
		Skipped:              skipped,
	}
	for _, h := range holdings {
		reason := "normal"
		if h.Salvage != SalvageNone {
			reason = string(h.Salvage)
			d.RowsSalvaged++
		}
		d.SalvageBreakdown[reason]++

		source := h.ValueSource
		if source == "" {
			source = "unknown"
		}
		d.ValueSourceBreakdown[source]++
	}
	return d
}

// SalvagedHoldings returns the subset of holdings whose identity was
// recovered through a fallback.
func SalvagedHoldings(holdings []Holding) []Holding {
	var salvaged []Holding
	for _, h := range holdings {
		if h.Salvage != SalvageNone {
			salvaged = append(salvaged, h)
		}
	}
	return salvaged
}
