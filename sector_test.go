package xfin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSector(t *testing.T) {
	tests := []struct {
		name string
		want Sector
	}{
		// Overrides beat keyword scoring.
		{"Tata Motors Ltd", SectorAuto},
		{"TATA MOTORS PASS VEH LTD", SectorAuto},
		{"Tata Capital Limited", SectorFinancial},
		{"REC Limited", SectorPower},
		{"Coal India Ltd", SectorPower},
		{"Vedanta Limited", SectorMetals},
		{"Graphite India", SectorMetals},
		{"GAIL (India) Ltd", SectorOilGas},
		// Keyword scoring.
		{"HDFC Bank Ltd", SectorBanking},
		{"State Bank of India", SectorBanking},
		{"Infosys Ltd", SectorIT},
		{"Sun Pharma Industries", SectorPharma},
		{"NTPC Ltd", SectorPower},
		{"Maruti Suzuki India", SectorAuto},
		{"UltraTech Cement", SectorCement},
		{"Bharti Airtel Ltd", SectorTelecom},
		{"Oberoi Realty", SectorRealEstate},
		{"Zee Entertainment Enterprises", SectorMedia},
		// Nothing matches.
		{"Mystery Holdings", SectorOther},
		{"", SectorOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferSector(tt.name), "name %q", tt.name)
	}
}

func TestInferSectorTieBreak(t *testing.T) {
	// "POWER STEEL" scores 1 for Power (low: POWER) and 1 for Metals &
	// Mining (low: STEEL); Power is declared earlier so it wins.
	assert.Equal(t, SectorPower, InferSector("POWER STEEL"))
}

type stubLookup struct {
	sector string
	err    error
	calls  int
}

func (s *stubLookup) LookupSector(ticker string) (string, error) {
	s.calls++
	return s.sector, s.err
}

func TestGetSector(t *testing.T) {
	lookup := &stubLookup{sector: "Banking"}
	assert.Equal(t, SectorBanking, GetSector("Whatever Corp", "HDFCBANK.NS", true, lookup))
	assert.Equal(t, 1, lookup.calls)

	// Lookup failure falls back to name inference.
	failing := &stubLookup{err: errors.New("api down")}
	assert.Equal(t, SectorIT, GetSector("Infosys Ltd", "INFY.NS", true, failing))

	// preferAPI=false never touches the lookup.
	lookup.calls = 0
	assert.Equal(t, SectorIT, GetSector("Infosys Ltd", "INFY.NS", false, lookup))
	assert.Equal(t, 0, lookup.calls)

	// No ticker means no lookup either.
	assert.Equal(t, SectorOther, GetSector("Mystery Holdings", "", true, lookup))
	assert.Equal(t, 0, lookup.calls)
}
