package roster

import (
	"encoding/csv"
	"regexp"
	"strings"
)

// Lines splits the export into trimmed lines. Empty lines are kept so that
// detectors looking at "the next line" see the real layout.
func Lines(text string) []string {
	if text == "" {
		return []string{}
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// cells splits a delimited line into trimmed cells, honoring double quotes.
// Lines that are not valid CSV fall back to a plain comma split.
func cells(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if err != nil {
		record = strings.Split(line, ",")
	}

	out := make([]string, len(record))
	for i, c := range record {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

var quotedPattern = regexp.MustCompile(`"([^"]+)"`)

// quoted returns every double-quoted substring of the line, quotes removed.
func quoted(line string) []string {
	var out []string
	for _, m := range quotedPattern.FindAllStringSubmatch(line, -1) {
		out = append(out, m[1])
	}
	return out
}
