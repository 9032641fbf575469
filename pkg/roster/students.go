package roster

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minRowLength = 5

var (
	studentNoPattern = regexp.MustCompile(`\b\d{9,11}\b`)
	// LAST, First M
	namePattern = regexp.MustCompile(`^\p{Lu}[\p{Lu}\s.'-]*,\s*\p{L}[\p{L}\s.'-]*$`)
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// IPv4 addresses and hosts on internal domains; public domains show up
	// in email columns of real rows
	hostPattern  = regexp.MustCompile(`(?i)\b\d{1,3}(\.\d{1,3}){3}\b|\b[a-z0-9-]+(\.[a-z0-9-]+)*\.(local|lan|internal|corp)\b`)
	monthPattern = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`)

	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bpage\s+\d+(\s+of\s+\d+)?\b`),
		regexp.MustCompile(`(?i)TOTAL NUMBER`),
		regexp.MustCompile(`(?i)Date Printed`),
		regexp.MustCompile(`(?i)OFFICIAL LIST`),
		regexp.MustCompile(`(?i)Printed by`),
		hostPattern,
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	}
)

// isNoise reports whether s looks like a header, footer, page marker or
// timestamp rather than student data.
func isNoise(s string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// isRosterHeader matches the "#, Student No, Full Name" header row.
func isRosterHeader(line string) bool {
	return strings.Contains(line, "#") &&
		(strings.Contains(line, "Student No") || strings.Contains(line, "Full Name"))
}

// looksLikeName is the shape every emitted full name must have.
func looksLikeName(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) && strings.Contains(s, ",")
}

func detectStudents(lines []string) []Student {
	start := -1
	for i, line := range lines {
		if isRosterHeader(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var students []Student
	for _, line := range lines[start:] {
		if s, ok := studentFromLine(line); ok {
			students = append(students, s)
		}
	}
	return students
}

func studentFromLine(line string) (Student, bool) {
	if utf8.RuneCountInString(line) < minRowLength || isNoise(line) {
		return Student{}, false
	}

	var s Student
	for _, c := range cells(line) {
		if s.StudentNo == "" {
			s.StudentNo = studentNoPattern.FindString(c)
		}
		if s.FullName == "" && namePattern.MatchString(c) {
			s.FullName = c
		}
	}
	if s.FullName == "" {
		s.FullName = quotedName(line)
	}

	name := s.FullName
	if utf8.RuneCountInString(name) <= 3 || !looksLikeName(name) || isNoise(name) {
		return Student{}, false
	}
	if hasMonth(line, name, s.StudentNo != "") {
		return Student{}, false
	}
	return s, true
}

// hasMonth reports a month name anywhere in the line. A month inside the
// name itself ("REYES, April") only counts when the row has no student
// number to vouch for it.
func hasMonth(line, name string, numbered bool) bool {
	if monthPattern.MatchString(strings.Replace(line, name, "", 1)) {
		return true
	}
	return !numbered && monthPattern.MatchString(name)
}

// quotedName is the fallback for rows whose name cell was broken up by the
// cell splitter.
func quotedName(line string) string {
	all := quoted(line)
	if len(all) == 0 {
		return ""
	}
	q := strings.TrimSpace(all[0])
	if utf8.RuneCountInString(q) <= 5 || !looksLikeName(q) {
		return ""
	}
	if yearPattern.MatchString(q) || hostPattern.MatchString(q) {
		return ""
	}
	return q
}
