package roster

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// policy decides whether a newly detected value replaces the stored one.
type policy func(current, candidate string) bool

// firstMatchWins keeps the first value ever stored.
func firstMatchWins(current, _ string) bool { return current == "" }

// lastMatchWins lets every later match overwrite the stored value.
func lastMatchWins(_, _ string) bool { return true }

// field is a detected scalar together with the policy that guards it.
type field struct {
	value  string
	policy policy
}

func (f *field) offer(candidate string) {
	if candidate == "" {
		return
	}
	if f.policy(f.value, candidate) {
		f.value = candidate
	}
}

const (
	sectionLabel = "Class Section"
	subjectLabel = "Subject Title"
	facultyLabel = "Faculty"
	yearLabel    = "Year Level"
)

var (
	sectionPattern = regexp.MustCompile(`(?i)\b(BSIT|BSCS|BSIS|BSEMC)[\s-]?(\d+[A-Z])\b`)
	coursePattern  = regexp.MustCompile(`\b[A-Z]{2,4}\d{3,4}\b`)
	sectionNoise   = strings.NewReplacer(" ", "", "\t", "", "-", "")
)

// matchSection returns the normalized section code found in s, if any.
func matchSection(s string) string {
	return NormalizeSection(sectionPattern.FindString(s))
}

// NormalizeSection uppercases a section code and drops spaces and hyphens,
// so "bsit-4d" and "BSIT 4D" both become "BSIT4D".
func NormalizeSection(s string) string {
	return strings.ToUpper(sectionNoise.Replace(strings.TrimSpace(s)))
}

// detectSection prefers a match from a "Class Section" line over a bare
// match anywhere else. The first bare match wins; a later labeled match
// replaces an earlier one.
func detectSection(lines []string) string {
	bare := field{policy: firstMatchWins}
	labeled := field{policy: lastMatchWins}

	for _, line := range lines {
		bare.offer(matchSection(line))
		if !strings.Contains(line, sectionLabel) {
			continue
		}
		for _, c := range cells(line) {
			labeled.offer(matchSection(c))
		}
	}

	if labeled.value != "" {
		return labeled.value
	}
	return bare.value
}

// ValidSection reports whether s is exactly one normalized section code.
func ValidSection(s string) bool {
	return s != "" && matchSection(s) == s
}

// recoverSection retries the bare section pattern over every line.
func recoverSection(lines []string) string {
	for _, line := range lines {
		if s := matchSection(line); s != "" {
			return s
		}
	}
	return ""
}

func detectCourseCode(lines []string) string {
	code := field{policy: firstMatchWins}
	for _, line := range lines {
		code.offer(coursePattern.FindString(line))
		if code.value != "" {
			break
		}
	}
	return code.value
}

// detectSubject looks at the label line and the two lines after it, in that
// order, and stops at the first acceptable cell.
func detectSubject(lines []string) string {
	subject := field{policy: firstMatchWins}

	for i, line := range lines {
		if !strings.Contains(line, subjectLabel) {
			continue
		}
		for j := i; j < len(lines) && j <= i+2 && subject.value == ""; j++ {
			for _, c := range cells(lines[j]) {
				if acceptSubject(c) {
					subject.offer(c)
					break
				}
			}
		}
		if subject.value != "" {
			break
		}
	}
	return subject.value
}

func acceptSubject(c string) bool {
	if c == "" || c == subjectLabel || utf8.RuneCountInString(c) <= 5 {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(c); unicode.IsDigit(r) {
		return false
	}
	return !strings.Contains(c, "Subject")
}

// detectFaculty scans every "Faculty" line; a later qualifying value
// overwrites an earlier one.
func detectFaculty(lines []string) string {
	faculty := field{policy: lastMatchWins}

	for _, line := range lines {
		if !strings.Contains(line, facultyLabel) {
			continue
		}
		faculty.offer(facultyFromLine(line))
	}
	return faculty.value
}

func facultyFromLine(line string) string {
	for _, q := range quoted(line) {
		if name := cleanPersonName(q); utf8.RuneCountInString(name) > 2 {
			return name
		}
	}
	for _, c := range cells(line) {
		if acceptFacultyCell(c) {
			return cleanPersonName(c)
		}
	}
	return ""
}

func acceptFacultyCell(c string) bool {
	if c == "" || c == facultyLabel || utf8.RuneCountInString(c) <= 2 {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(c); !unicode.IsUpper(r) {
		return false
	}
	return strings.Contains(c, ",") || len(strings.Fields(c)) >= 2
}

// cleanPersonName strips quotes and trims each side of the first comma,
// keeping "Last, First" order.
func cleanPersonName(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	last, first, ok := strings.Cut(s, ",")
	if !ok {
		return s
	}
	last, first = strings.TrimSpace(last), strings.TrimSpace(first)
	if first == "" {
		return last
	}
	return last + ", " + first
}

func detectYearLevel(lines []string) string {
	year := field{policy: firstMatchWins}
	for _, line := range lines {
		if !strings.Contains(line, yearLabel) {
			continue
		}
		for _, c := range cells(line) {
			if isYearLabel(c) || !strings.Contains(c, "Year") {
				continue
			}
			year.offer(c)
		}
	}
	return year.value
}

// isYearLabel matches the bare label cell, so "Year Level: 4th Year" still
// counts as a value.
func isYearLabel(c string) bool {
	return strings.TrimSpace(strings.TrimSuffix(c, ":")) == yearLabel
}

// leadingUpper returns the run of uppercase letters at the start of s.
func leadingUpper(s string) string {
	end := 0
	for i, r := range s {
		if r < 'A' || r > 'Z' {
			break
		}
		end = i + 1
	}
	return s[:end]
}
