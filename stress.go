package xfin

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Scenario is a stress scenario: a per-category shock factor table plus
// descriptive metadata. Factors are fractional returns, negative for
// losses.
type Scenario struct {
	Name        string                    `yaml:"name"`
	Factors     map[AssetCategory]float64 `yaml:"factors"`
	Description string                    `yaml:"description"`
	Probability float64                   `yaml:"probability"`
}

// Catalog is an ordered set of named scenarios. Keys listed first keep
// their position in Keys() and in comparison output.
type Catalog struct {
	order     []string
	scenarios map[string]Scenario
}

// NewCatalog builds a catalog from keys in the given order. Keys absent
// from scenarios are ignored.
func NewCatalog(order []string, scenarios map[string]Scenario) *Catalog {
	c := &Catalog{scenarios: make(map[string]Scenario, len(order))}
	for _, k := range order {
		if s, ok := scenarios[k]; ok {
			c.order = append(c.order, k)
			c.scenarios[k] = s
		}
	}
	return c
}

// DefaultCatalog returns the built-in scenario set: five historically
// grounded shock tables covering broad corrections, recessions, inflation,
// a tech rout, and forced liquidation.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]string{"market_correction", "recession_scenario", "inflation_spike", "tech_sector_crash", "personal_emergency"},
		map[string]Scenario{
			"market_correction": {
				Name: "Market Correction",
				Factors: map[AssetCategory]float64{
					LargeCapStocks:      -0.12,
					SmallCapStocks:      -0.18,
					TechStocks:          -0.15,
					InternationalStocks: -0.10,
					Bonds:               0.02,
					REITs:               -0.08,
					Commodities:         -0.05,
					Crypto:              -0.25,
					Cash:                0.0,
				},
				Description: "10–15% drop in broad equities, happens every 1–2 years",
				Probability: 0.4,
			},
			"recession_scenario": {
				Name: "Economic Recession",
				Factors: map[AssetCategory]float64{
					LargeCapStocks:      -0.22,
					SmallCapStocks:      -0.28,
					TechStocks:          -0.25,
					InternationalStocks: -0.20,
					Bonds:               0.08,
					REITs:               -0.15,
					Commodities:         -0.12,
					Crypto:              -0.40,
					Cash:                0.0,
				},
				Description: "20–30% drop in equities, occurs ~every 8–10 years",
				Probability: 0.15,
			},
			"inflation_spike": {
				Name: "High Inflation Period",
				Factors: map[AssetCategory]float64{
					LargeCapStocks:      -0.08,
					SmallCapStocks:      -0.12,
					TechStocks:          -0.20,
					InternationalStocks: -0.05,
					Bonds:               -0.15,
					REITs:               0.05,
					Commodities:         0.15,
					Crypto:              -0.30,
					Cash:                -0.06,
				},
				Description: "5–10% equity losses, can persist 1–2 years",
				Probability: 0.25,
			},
			"tech_sector_crash": {
				Name: "Tech Sector Crash",
				Factors: map[AssetCategory]float64{
					LargeCapStocks:      -0.15,
					SmallCapStocks:      -0.10,
					TechStocks:          -0.45,
					InternationalStocks: -0.08,
					Bonds:               0.05,
					REITs:               -0.05,
					Commodities:         0.02,
					Crypto:              -0.35,
					Cash:                0.0,
				},
				Description: "15–25% tech drop, cyclic every 3–5 years",
				Probability: 0.20,
			},
			"personal_emergency": {
				Name: "Personal Emergency",
				Factors: map[AssetCategory]float64{
					LargeCapStocks:      -0.05,
					SmallCapStocks:      -0.08,
					TechStocks:          -0.06,
					InternationalStocks: -0.07,
					Bonds:               -0.02,
					REITs:               -0.10,
					Commodities:         -0.12,
					Crypto:              -0.15,
					Cash:                0.0,
				},
				Description: "Forced liquidation losses of 5–10%",
				Probability: 0.10,
			},
		},
	)
}

// Keys returns the scenario keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Lookup returns the scenario for key, reporting whether it exists.
func (c *Catalog) Lookup(key string) (Scenario, bool) {
	s, ok := c.scenarios[key]
	return s, ok
}

// Get returns the scenario for key, falling back to the catalog's first
// scenario for unknown keys so single-scenario callers always get
// something plausible, whatever catalog is loaded.
func (c *Catalog) Get(key string) Scenario {
	if s, ok := c.scenarios[key]; ok {
		return s
	}
	if len(c.order) == 0 {
		return Scenario{}
	}
	return c.scenarios[c.order[0]]
}

// RiskLevel buckets the severity of a stress impact.
type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskExtreme RiskLevel = "Extreme"
)

func riskLevel(absImpact float64) RiskLevel {
	switch {
	case absImpact > 0.25:
		return RiskExtreme
	case absImpact > 0.15:
		return RiskHigh
	case absImpact > 0.08:
		return RiskMedium
	default:
		return RiskLow
	}
}

// MissingFactorShock is the shock applied to a portfolio category the
// scenario does not price. Exported so reports show the same figure the
// engine applies.
const MissingFactorShock = -0.05

// annualRecoveryRate is the assumed market return used to translate a
// drawdown into recovery months.
const annualRecoveryRate = 0.125

// StressImpact is the outcome of applying a scenario to a portfolio.
type StressImpact struct {
	TotalImpact    float64 // fractional portfolio return, negative = loss
	ImpactPercent  float64 // TotalImpact × 100
	RiskLevel      RiskLevel
	RecoveryMonths float64
	VaR95          float64 // 95% value-at-risk, fractional
	ValueSource    string
}

// ComputeImpact weights each composition category by the scenario's factor
// (or MissingFactorShock when the scenario lacks one) and derives the risk
// level, recovery time and VaR from the total.
func ComputeImpact(a Analysis, factors map[AssetCategory]float64) StressImpact {
	var total float64
	for cat, weight := range a.Composition {
		f, ok := factors[cat]
		if !ok {
			f = MissingFactorShock
		}
		total += weight * f
	}
	abs := math.Abs(total)
	return StressImpact{
		TotalImpact:    total,
		ImpactPercent:  total * 100,
		RiskLevel:      riskLevel(abs),
		RecoveryMonths: abs / annualRecoveryRate * 12,
		VaR95:          total * 1.5,
		ValueSource:    a.ValueSource,
	}
}

// DefaultImpact is the fixed per-scenario fallback used when a computed
// impact turns out non-finite. Unknown keys get -10%.
func DefaultImpact(scenarioKey string) StressImpact {
	impacts := map[string]float64{
		"market_correction":  -0.12,
		"recession_scenario": -0.23,
		"inflation_spike":    -0.08,
		"tech_sector_crash":  -0.18,
		"personal_emergency": -0.06,
	}
	impact, ok := impacts[scenarioKey]
	if !ok {
		impact = -0.10
	}
	return StressImpact{
		TotalImpact:    impact,
		ImpactPercent:  impact * 100,
		RiskLevel:      RiskMedium,
		RecoveryMonths: math.Abs(impact) * 20,
		VaR95:          impact * 1.5,
		ValueSource:    "Default",
	}
}

// StressPredictor is an optional external model. When present the engine
// asks it first and only falls back to the built-in computation on error.
type StressPredictor interface {
	PredictStressImpact(a Analysis, factors map[AssetCategory]float64) (*StressImpact, error)
}

// Engine runs stress scenarios against portfolio analyses.
type Engine struct {
	catalog   *Catalog
	predictor StressPredictor
	log       zerolog.Logger
}

// NewEngine builds an engine over catalog. predictor may be nil.
func NewEngine(catalog *Catalog, predictor StressPredictor, log zerolog.Logger) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog, predictor: predictor, log: log}
}

// Catalog returns the engine's scenario catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// ScenarioAnalysis pairs a scenario with the impact it produced and the
// portfolio analysis it was applied to.
type ScenarioAnalysis struct {
	Key       string
	Scenario  Scenario
	Impact    StressImpact
	Portfolio Analysis
}

// ExplainImpact applies the named scenario to the portfolio. Unknown names
// resolve through Catalog.Get. A configured predictor gets first shot; its
// failure is logged and the built-in computation takes over. A non-finite
// result collapses to DefaultImpact.
func (e *Engine) ExplainImpact(a Analysis, scenarioKey string) ScenarioAnalysis {
	scenario := e.catalog.Get(scenarioKey)

	var impact StressImpact
	computed := false
	if e.predictor != nil {
		if p, err := e.predictor.PredictStressImpact(a, scenario.Factors); err != nil {
			e.log.Warn().Err(err).Str("scenario", scenarioKey).Msg("stress predictor failed, using builtin model")
		} else if p != nil {
			impact = *p
			computed = true
		}
	}
	if !computed {
		impact = ComputeImpact(a, scenario.Factors)
	}
	if math.IsNaN(impact.TotalImpact) || math.IsInf(impact.TotalImpact, 0) {
		e.log.Warn().Str("scenario", scenarioKey).Msg("non-finite stress impact, using default")
		impact = DefaultImpact(scenarioKey)
	}

	return ScenarioAnalysis{Key: scenarioKey, Scenario: scenario, Impact: impact, Portfolio: a}
}

// ComparisonRow is one line of a multi-scenario comparison.
type ComparisonRow struct {
	Scenario       string // display name, e.g. "Market Correction"
	ImpactPercent  float64
	RiskLevel      RiskLevel
	RecoveryMonths float64
}

// Compare runs every named scenario against the portfolio concurrently and
// returns rows in the input order. Names absent from the catalog are
// logged and skipped rather than silently remapped.
func (e *Engine) Compare(a Analysis, scenarioKeys []string) []ComparisonRow {
	type slot struct {
		row ComparisonRow
		ok  bool
	}
	slots := make([]slot, len(scenarioKeys))

	var wg sync.WaitGroup
	for i, key := range scenarioKeys {
		if _, ok := e.catalog.Lookup(key); !ok {
			e.log.Warn().Str("scenario", key).Msg("unknown scenario, skipping")
			continue
		}
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			sa := e.ExplainImpact(a, key)
			slots[i] = slot{
				row: ComparisonRow{
					Scenario:       titleCase(key),
					ImpactPercent:  sa.Impact.ImpactPercent,
					RiskLevel:      sa.Impact.RiskLevel,
					RecoveryMonths: sa.Impact.RecoveryMonths,
				},
				ok: true,
			}
		}(i, key)
	}
	wg.Wait()

	rows := make([]ComparisonRow, 0, len(scenarioKeys))
	for _, s := range slots {
		if s.ok {
			rows = append(rows, s.row)
		}
	}
	return rows
}

// titleCase turns a snake_case key into a display name, e.g.
// "market_correction" into "Market Correction".
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// FormatImpact renders a one-line human summary of an impact, mostly for
// logs.
func FormatImpact(sa ScenarioAnalysis) string {
	return fmt.Sprintf("%s: %.1f%% (%s risk, ~%.0f months to recover)",
		sa.Scenario.Name, sa.Impact.ImpactPercent, sa.Impact.RiskLevel, sa.Impact.RecoveryMonths)
}
