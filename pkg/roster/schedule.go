package roster

import (
	"regexp"
	"strings"
)

var (
	schedulePattern = regexp.MustCompile(
		`\b([MTWFS]{1,3})\s+(\d{1,2}:\d{2}\s*[AP]M\s*-\s*\d{1,2}:\d{2}\s*[AP]M)\s*\(([^)]+)\)`)
	continuationPattern = regexp.MustCompile(`^(,{3,}|[\s,]+[MTWFS]{1,3}\s)`)
	timeSpacing         = regexp.MustCompile(`\s*-\s*`)
	clockSpacing        = regexp.MustCompile(`(\d)\s*([AP]M)`)
)

// scheduleStrategy yields the text fragments of a line worth matching
// against the schedule pattern. A strategy returns nil for lines it does
// not handle.
type scheduleStrategy func(line string) []string

// scheduleStrategies run in order against every line. New export layouts
// get a new entry here.
var scheduleStrategies = []scheduleStrategy{
	rawLine,
	scheduleCells,
	continuationRow,
}

func rawLine(line string) []string {
	return []string{line}
}

func scheduleCells(line string) []string {
	if !strings.Contains(line, "Schedule") {
		return nil
	}
	return cells(line)
}

// continuationRow handles wrapped cells, which show up as rows starting with
// a run of empty cells before the day code.
func continuationRow(line string) []string {
	if !continuationPattern.MatchString(line) {
		return nil
	}
	return []string{strings.TrimLeft(line, ", \t")}
}

// scheduleSet collects entries in first-seen order, dropping repeats.
type scheduleSet struct {
	seen    map[string]bool
	entries []Schedule
}

func newScheduleSet() *scheduleSet {
	return &scheduleSet{seen: make(map[string]bool)}
}

func (s *scheduleSet) add(e Schedule) {
	key := e.Key()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.entries = append(s.entries, e)
}

func detectSchedules(lines []string) []Schedule {
	set := newScheduleSet()
	for _, line := range lines {
		if line == "" {
			continue
		}
		for _, strategy := range scheduleStrategies {
			for _, fragment := range strategy(line) {
				for _, e := range matchSchedules(fragment) {
					set.add(e)
				}
			}
		}
	}
	return set.entries
}

func matchSchedules(s string) []Schedule {
	var out []Schedule
	for _, m := range schedulePattern.FindAllStringSubmatch(s, -1) {
		room := strings.TrimSpace(m[3])
		if room == "" {
			continue
		}
		out = append(out, Schedule{
			Day:  m[1],
			Time: normalizeTime(m[2]),
			Room: room,
		})
	}
	return out
}

// normalizeTime rewrites "1:00PM-2:30 PM" as "1:00 PM - 2:30 PM".
func normalizeTime(s string) string {
	s = timeSpacing.ReplaceAllString(s, " - ")
	return clockSpacing.ReplaceAllString(s, "$1 $2")
}
