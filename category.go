package xfin

import "strings"

// AssetCategory is the coarse asset class a holding belongs to. The set is
// closed; classification always lands on exactly one of these.
type AssetCategory string

const (
	LargeCapStocks      AssetCategory = "large_cap_stocks"
	SmallCapStocks      AssetCategory = "small_cap_stocks"
	TechStocks          AssetCategory = "tech_stocks"
	InternationalStocks AssetCategory = "international_stocks"
	Bonds               AssetCategory = "bonds"
	REITs               AssetCategory = "reits"
	Commodities         AssetCategory = "commodities"
	Crypto              AssetCategory = "crypto"
	Cash                AssetCategory = "cash"
)

// assetCategoryTable maps well-known stock names and symbols to categories.
// Matching is a bidirectional substring test on the uppercased name, in
// declaration order.
var assetCategoryTable = []struct {
	name     string
	category AssetCategory
}{
	// Banks and financial services
	{"BANK OF MAHARASHTRA", LargeCapStocks},
	{"HDFC BANK", LargeCapStocks},
	{"ICICI BANK", LargeCapStocks},
	{"SBI", LargeCapStocks},
	{"KOTAK MAHINDRA BANK", LargeCapStocks},
	{"AXIS BANK", LargeCapStocks},
	// Oil & gas
	{"GAIL (INDIA) LTD", LargeCapStocks},
	{"INDIAN OIL CORP LTD", LargeCapStocks},
	{"HINDUSTAN PETROLEUM CORP", LargeCapStocks},
	{"OIL AND NATURAL GAS CORP.", LargeCapStocks},
	{"OIL INDIA LTD", LargeCapStocks},
	{"COAL INDIA LTD", LargeCapStocks},
	// Tech
	{"AAPL", TechStocks},
	{"APPLE INC", TechStocks},
	{"APPLE", TechStocks},
	{"MSFT", TechStocks},
	{"MICROSOFT CORP", TechStocks},
	{"MICROSOFT", TechStocks},
	{"GOOGL", TechStocks},
	{"ALPHABET INC", TechStocks},
	{"GOOGLE", TechStocks},
	{"JIO FIN SERVICES LTD", TechStocks},
}

// Keyword tiers for names the fixed table does not know. The source market
// is equity heavy, so everything unmatched defaults to large caps; the
// composition math downstream depends on this bias.
var (
	bankingKeywords = []string{"bank", "financial", "insurance", "credit", "finance", "mutual fund"}
	techKeywords    = []string{"tech", "software", "cyber", "data", "ai", "digital", "computer", "telecom", "jio"}
	energyKeywords  = []string{"oil", "gas", "energy", "petroleum", "coal", "power", "electric", "renewable"}
)

// CategorizeAsset maps a holding's display name to its asset category.
//
// Order: the fixed table first (bidirectional substring, uppercased), then
// keyword heuristics, then the large-cap default. It never returns anything
// outside the AssetCategory set.
func CategorizeAsset(name string) AssetCategory {
	if strings.TrimSpace(name) == "" {
		return LargeCapStocks
	}

	clean := strings.ToUpper(strings.TrimSpace(name))
	for _, entry := range assetCategoryTable {
		if strings.Contains(clean, entry.name) || strings.Contains(entry.name, clean) {
			return entry.category
		}
	}

	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, bankingKeywords):
		return LargeCapStocks
	case containsAny(lower, techKeywords):
		return TechStocks
	case containsAny(lower, energyKeywords):
		return LargeCapStocks
	default:
		return LargeCapStocks
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
