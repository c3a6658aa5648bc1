package yahoo

import (
	"fmt"
	"strings"
)

// yahooSectorMapping translates Yahoo Finance sector labels to the sector
// catalog used everywhere else. Labels outside the table pass through
// unchanged.
var yahooSectorMapping = map[string]string{
	"Financial Services":     "Financial Services",
	"Banks":                  "Banking",
	"Technology":             "IT Services",
	"Communication Services": "Telecom",
	"Energy":                 "Oil & Gas",
	"Basic Materials":        "Metals & Mining",
	"Utilities":              "Power",
	"Industrials":            "Infrastructure",
	"Consumer Cyclical":      "FMCG",
	"Consumer Defensive":     "FMCG",
	"Healthcare":             "Pharmaceuticals",
	"Real Estate":            "Real Estate",
}

// industryFallbacks resolve a sector from the industry label when the
// profile carries no sector, checked in order.
var industryFallbacks = []struct {
	keywords []string
	sector   string
}{
	{[]string{"bank"}, "Banking"},
	{[]string{"software", "technology"}, "IT Services"},
	{[]string{"oil", "gas"}, "Oil & Gas"},
	{[]string{"pharma", "drug"}, "Pharmaceuticals"},
	{[]string{"auto"}, "Automobiles"},
	{[]string{"telecom"}, "Telecom"},
	{[]string{"power", "electric"}, "Power"},
	{[]string{"steel", "metal"}, "Metals & Mining"},
}

// LookupSector fetches the company profile for ticker and maps its sector
// to the local catalog. When the profile has no sector, the industry label
// is matched against keyword fallbacks. An empty result with nil error
// means Yahoo knows the ticker but not its classification.
func (c *Client) LookupSector(ticker string) (string, error) {
	doc, err := c.quoteSummary(ticker, "assetProfile")
	if err != nil {
		return "", fmt.Errorf("sector lookup for %s: %w", ticker, err)
	}

	if sector := pathString(doc, "$.quoteSummary.result[0].assetProfile.sector"); sector != "" {
		if mapped, ok := yahooSectorMapping[sector]; ok {
			return mapped, nil
		}
		return sector, nil
	}

	industry := strings.ToLower(pathString(doc, "$.quoteSummary.result[0].assetProfile.industry"))
	if industry != "" {
		for _, fb := range industryFallbacks {
			for _, kw := range fb.keywords {
				if strings.Contains(industry, kw) {
					return fb.sector, nil
				}
			}
		}
	}
	return "", nil
}
