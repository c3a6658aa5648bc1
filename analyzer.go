package xfin

// Composition maps asset categories to portfolio weights. For a usable
// portfolio the weights sum to ~1.0.
type Composition map[AssetCategory]float64

// Analysis summarizes a portfolio's category allocation and the metrics
// derived from it.
type Analysis struct {
	Composition       Composition
	TotalWeight       float64
	NumAssets         int
	ConcentrationRisk float64 // Herfindahl index over category weights
	CategoriesCount   int
	TotalValue        float64
	ValueSource       string // header of the column values came from
}

// DefaultAnalysis is the stand-in used when no portfolio data is usable:
// a stylized 20-asset allocation worth 50,000.
func DefaultAnalysis() Analysis {
	return Analysis{
		Composition: Composition{
			LargeCapStocks: 0.60,
			TechStocks:     0.15,
			SmallCapStocks: 0.15,
			REITs:          0.05,
			Bonds:          0.05,
		},
		TotalWeight:       1.0,
		NumAssets:         20,
		ConcentrationRisk: 0.25,
		CategoriesCount:   5,
		TotalValue:        50000,
		ValueSource:       "Default",
	}
}

// Analyze categorizes every holding and computes value-weighted category
// allocations. Holdings with a non-positive value are excluded from the
// weights but still count toward NumAssets. When nothing is usable (no
// holdings, zero total value, or no positive-value rows) it falls back to
// DefaultAnalysis.
func Analyze(holdings []Holding) Analysis {
	if len(holdings) == 0 {
		return DefaultAnalysis()
	}

	var total float64
	for _, h := range holdings {
		total += h.Value
	}
	if total <= 0 {
		return DefaultAnalysis()
	}

	comp := make(Composition)
	valueSource := ""
	for _, h := range holdings {
		if h.Value <= 0 {
			continue
		}
		comp[CategorizeAsset(h.DisplayName)] += h.Value / total
		if valueSource == "" && h.ValueSource != "" {
			valueSource = h.ValueSource
		}
	}
	if len(comp) == 0 {
		return DefaultAnalysis()
	}

	var totalWeight, herfindahl float64
	for _, w := range comp {
		totalWeight += w
		herfindahl += w * w
	}

	return Analysis{
		Composition:       comp,
		TotalWeight:       totalWeight,
		NumAssets:         len(holdings),
		ConcentrationRisk: herfindahl,
		CategoriesCount:   len(comp),
		TotalValue:        total,
		ValueSource:       valueSource,
	}
}
