package roster

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned by callers of Parse when an export does not
// yield a course code, a subject name and at least one student.
var ErrUnrecognized = errors.New("roster: export not recognized")

// Roster is the normalized result of parsing one course-section export
type Roster struct {
	Section     string     `json:"section" yaml:"section"`         // "BSIT4D"
	CourseCode  string     `json:"courseCode" yaml:"courseCode"`   // "IT413"
	SubjectName string     `json:"subjectName" yaml:"subjectName"` // free text
	FacultyName string     `json:"facultyName" yaml:"facultyName"` // "Last, First"
	YearLevel   string     `json:"yearLevel" yaml:"yearLevel"`
	Department  string     `json:"department" yaml:"department"`
	Students    []Student  `json:"students" yaml:"students"`
	Schedules   []Schedule `json:"schedules" yaml:"schedules"`
}

// Student is a single row of the class list
type Student struct {
	StudentNo string `json:"studentNo,omitempty" yaml:"studentNo,omitempty"`
	FullName  string `json:"fullName" yaml:"fullName"`
}

// Schedule is one meeting of the section
type Schedule struct {
	Day  string `json:"day" yaml:"day"`   // "M", "TF", "MWF"
	Time string `json:"time" yaml:"time"` // "1:00 PM - 2:30 PM"
	Room string `json:"room" yaml:"room"`
}

// Key returns the composite key used to deduplicate schedule entries.
func (s Schedule) Key() string {
	return s.Day + "|" + s.Time + "|" + s.Room
}

// dayCodes maps each letter of the day alphabet to a weekday.
// T cannot be told apart from Thursday in the exports and is read as Tuesday.
var dayCodes = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'F': time.Friday,
	'S': time.Saturday,
}

// Weekdays expands the day code into the weekdays it covers, in code order.
func (s Schedule) Weekdays() []time.Weekday {
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, r := range s.Day {
		d, ok := dayCodes[r]
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AP]M)$`)

// Span parses the time range into minutes after midnight.
func (s Schedule) Span() (start, end int, err error) {
	parts := strings.Split(s.Time, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q", s.Time)
	}
	if start, err = clockMinutes(parts[0]); err != nil {
		return 0, 0, err
	}
	if end, err = clockMinutes(parts[1]); err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("time range %q ends before it starts", s.Time)
	}
	return start, end, nil
}

func clockMinutes(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour %= 12
	if m[3] == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}
