package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText flattens every table row of an HTML export into one delimited
// line, so the result reads like the spreadsheet export of the same report.
// Cells containing a comma or a quote are double-quoted.
func HTMLToText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML export: %w", err)
	}

	var lines []string

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(j int, cell *goquery.Selection) {
			text := strings.Join(strings.Fields(cell.Text()), " ")
			cells = append(cells, quoteCell(text))

			// Spanned cells keep their column positions.
			if span, ok := cell.Attr("colspan"); ok {
				var n int
				if _, err := fmt.Sscanf(span, "%d", &n); err == nil {
					for k := 1; k < n; k++ {
						cells = append(cells, "")
					}
				}
			}
		})
		lines = append(lines, strings.Join(cells, ","))
	})

	return strings.Join(lines, "\n"), nil
}

func quoteCell(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
