package yahoo

import (
	"fmt"
	"time"
)

// Scores holds ESG scores on a 0-100 scale where higher is better.
// Pointer fields distinguish "not reported" from an actual zero.
type Scores struct {
	Environmental *float64
	Social        *float64
	Governance    *float64
	Overall       *float64

	// TotalESG is the raw MSCI risk score as Yahoo reports it, lower is
	// better. Kept for reference alongside the converted scores.
	TotalESG   *float64
	PeerGroup  string
	Percentile *float64

	DataSource string
	FetchedAt  time.Time
}

// HasAny reports whether at least one pillar score is present.
func (s Scores) HasAny() bool {
	return s.Environmental != nil || s.Social != nil || s.Governance != nil
}

// convertMSCI converts an MSCI ESG risk score (0-50, lower is better) to a
// 0-100 scale where higher is better, clamped to the target range.
func convertMSCI(msci float64) float64 {
	converted := 100 - msci*1.8
	if converted < 0 {
		return 0
	}
	if converted > 100 {
		return 100
	}
	return converted
}

// ESG fetches MSCI ESG risk scores for ticker and converts them to the
// 0-100 higher-is-better scale. It returns nil when Yahoo has no
// sustainability data for the ticker.
func (c *Client) ESG(ticker string) (*Scores, error) {
	doc, err := c.quoteSummary(ticker, "esgScores")
	if err != nil {
		return nil, fmt.Errorf("esg lookup for %s: %w", ticker, err)
	}

	const base = "$.quoteSummary.result[0].esgScores."
	s := &Scores{
		DataSource: "Yahoo Finance (MSCI ESG)",
		FetchedAt:  time.Now(),
	}
	if v, ok := pathFloat(doc, base+"environmentScore.raw"); ok {
		converted := convertMSCI(v)
		s.Environmental = &converted
	}
	if v, ok := pathFloat(doc, base+"socialScore.raw"); ok {
		converted := convertMSCI(v)
		s.Social = &converted
	}
	if v, ok := pathFloat(doc, base+"governanceScore.raw"); ok {
		converted := convertMSCI(v)
		s.Governance = &converted
	}
	if v, ok := pathFloat(doc, base+"totalEsg.raw"); ok {
		converted := convertMSCI(v)
		s.Overall = &converted
		s.TotalESG = &v
	}
	if v := pathString(doc, base+"peerGroup"); v != "" {
		s.PeerGroup = v
	}
	if v, ok := pathFloat(doc, base+"percentile.raw"); ok {
		s.Percentile = &v
	}

	if !s.HasAny() {
		return nil, nil
	}
	return s, nil
}
