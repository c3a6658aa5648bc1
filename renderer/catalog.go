package renderer

import (
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	xfin "github.com/DhruvParmar10/XFIN"
)

// CatalogMarkdown lists every scenario in the catalog with its
// description, probability and the number of category factors it carries.
func CatalogMarkdown(catalog *xfin.Catalog) string {
	buf := strings.Builder{}
	doc := md.NewMarkdown(&buf)

	doc.H1("Stress Scenarios")

	rows := [][]string{}
	for _, key := range catalog.Keys() {
		s, _ := catalog.Lookup(key)
		rows = append(rows, []string{
			key,
			s.Name,
			fmt.Sprintf("%.0f%%", s.Probability*100),
			s.Description,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Key", "Scenario", "Probability", "Description"},
		Rows:   rows,
	})

	return doc.String()
}
