package xfin

import "testing"

func TestCategorizeAsset(t *testing.T) {
	tests := []struct {
		name string
		want AssetCategory
	}{
		// Fixed table hits.
		{"HDFC BANK LTD", LargeCapStocks},
		{"Bank of Maharashtra", LargeCapStocks},
		{"COAL INDIA LTD", LargeCapStocks},
		{"Apple Inc", TechStocks},
		{"MSFT", TechStocks},
		{"JIO FIN SERVICES LTD", TechStocks},
		// Keyword tiers.
		{"Some Random Bank", LargeCapStocks},
		{"Niche Insurance Company", LargeCapStocks},
		{"Acme Software Solutions", TechStocks},
		{"Star Telecom Ventures", TechStocks},
		{"Delta Petroleum Works", LargeCapStocks},
		{"Windfarm Renewable Holdings", LargeCapStocks},
		// Defaults.
		{"Tata Consultancy Services", LargeCapStocks}, // no "tech" keyword in the name
		{"Completely Unknown Corp", LargeCapStocks},
		{"", LargeCapStocks},
	}
	for _, tt := range tests {
		if got := CategorizeAsset(tt.name); got != tt.want {
			t.Errorf("CategorizeAsset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCategorizeAssetBidirectional(t *testing.T) {
	// A short cell like "SBI" also matches when the table entry is longer.
	if got := CategorizeAsset("SBI"); got != LargeCapStocks {
		t.Errorf("CategorizeAsset(SBI) = %v", got)
	}
	// And a long cell containing a table entry matches too.
	if got := CategorizeAsset("APPLE INC COMMON STOCK"); got != TechStocks {
		t.Errorf("CategorizeAsset(long apple) = %v", got)
	}
}
