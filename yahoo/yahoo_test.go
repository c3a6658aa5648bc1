package yahoo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMSCI(t *testing.T) {
	tests := []struct {
		msci float64
		want float64
	}{
		{0, 100},
		{10, 82},
		{25, 55},
		{50, 10},
		{60, 0},    // clamped low
		{-10, 100}, // clamped high
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, convertMSCI(tt.msci), 1e-9, "msci %v", tt.msci)
	}
}

const esgPayload = `{
  "quoteSummary": {
    "result": [{
      "esgScores": {
        "totalEsg": {"raw": 25.0},
        "environmentScore": {"raw": 10.0},
        "socialScore": {"raw": 8.5},
        "governanceScore": {"raw": 6.5},
        "peerGroup": "Integrated Oil & Gas",
        "percentile": {"raw": 43.0}
      }
    }],
    "error": null
  }
}`

func TestESGPathExtraction(t *testing.T) {
	var doc interface{}
	require.NoError(t, json.Unmarshal([]byte(esgPayload), &doc))

	v, ok := pathFloat(doc, "$.quoteSummary.result[0].esgScores.totalEsg.raw")
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	assert.Equal(t, "Integrated Oil & Gas", pathString(doc, "$.quoteSummary.result[0].esgScores.peerGroup"))

	_, ok = pathFloat(doc, "$.quoteSummary.result[0].esgScores.missing.raw")
	assert.False(t, ok)
}

const profilePayload = `{
  "quoteSummary": {
    "result": [{
      "assetProfile": {
        "sector": "Basic Materials",
        "industry": "Steel"
      }
    }]
  }
}`

func TestSectorMapping(t *testing.T) {
	var doc interface{}
	require.NoError(t, json.Unmarshal([]byte(profilePayload), &doc))

	sector := pathString(doc, "$.quoteSummary.result[0].assetProfile.sector")
	assert.Equal(t, "Metals & Mining", yahooSectorMapping[sector])

	// Unknown labels pass through via LookupSector; the map itself stays
	// closed.
	_, known := yahooSectorMapping["Conglomerates"]
	assert.False(t, known)
}

func TestIndustryFallbacks(t *testing.T) {
	find := func(industry string) string {
		for _, fb := range industryFallbacks {
			for _, kw := range fb.keywords {
				if strings.Contains(industry, kw) {
					return fb.sector
				}
			}
		}
		return ""
	}
	assert.Equal(t, "Banking", find("banks - regional"))
	assert.Equal(t, "IT Services", find("software - infrastructure"))
	assert.Equal(t, "Power", find("utilities - independent power producers"))
	assert.Equal(t, "", find("tobacco"))
}
