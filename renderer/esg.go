package renderer

import (
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/DhruvParmar10/XFIN/esg"
	"github.com/DhruvParmar10/XFIN/yahoo"
)

func score(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}

// ESGMarkdown renders the ESG scorecard for one security.
func ESGMarkdown(ticker string, s *yahoo.Scores) string {
	buf := strings.Builder{}
	doc := md.NewMarkdown(&buf)

	doc.H1("ESG Scores: " + ticker)
	if s == nil {
		doc.PlainText("No ESG data available.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"Pillar", "Score"},
		Rows: [][]string{
			{"Environmental", score(s.Environmental)},
			{"Social", score(s.Social)},
			{"Governance", score(s.Governance)},
			{"Overall", score(s.Overall)},
		},
	})

	details := []string{}
	if s.TotalESG != nil {
		details = append(details, fmt.Sprintf("Total ESG risk: %.1f", *s.TotalESG))
	}
	if s.Percentile != nil {
		details = append(details, fmt.Sprintf("Peer percentile: %.0f", *s.Percentile))
	}
	if s.PeerGroup != "" {
		details = append(details, "Peer group: "+s.PeerGroup)
	}
	if s.DataSource != "" {
		details = append(details, "Source: "+s.DataSource)
	}
	if len(details) > 0 {
		doc.BulletList(details...)
	}

	return doc.String()
}

// ESGStatsMarkdown summarizes the local ESG cache.
func ESGStatsMarkdown(st esg.Stats) string {
	buf := strings.Builder{}
	doc := md.NewMarkdown(&buf)

	doc.H1("ESG Cache")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Entries", fmt.Sprintf("%d", st.Total)},
			{"Valid", fmt.Sprintf("%d", st.Valid)},
			{"Expired", fmt.Sprintf("%d", st.Expired)},
			{"Expiry", fmt.Sprintf("%d days", int(st.Expiry.Hours()/24))},
		},
	})

	return doc.String()
}
