package exporter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"rosterctl/pkg/roster"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// ErrNoSchedules is returned when a roster has nothing to put on a calendar.
var ErrNoSchedules = errors.New("exporter: roster has no schedules")

// uidNamespace scopes the deterministic event UIDs to this tool.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://rosterctl.local/ics"))

// Term is the span of weeks the class meets
type Term struct {
	Start time.Time // first day of classes, in the campus timezone
	Weeks int
}

// GenerateICS writes one weekly recurring event per meeting day of every
// schedule entry. Entries with an unreadable time range are skipped.
func GenerateICS(r *roster.Roster, term Term, w io.Writer) error {
	if len(r.Schedules) == 0 {
		return ErrNoSchedules
	}
	if term.Weeks <= 0 {
		return fmt.Errorf("term must span at least one week, got %d", term.Weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rosterctl//Class Schedule//EN")

	loc := term.Start.Location()
	now := time.Now()
	added := 0

	for _, s := range r.Schedules {
		startMin, endMin, err := s.Span()
		if err != nil {
			continue
		}

		for _, day := range s.Weekdays() {
			first := firstOnOrAfter(term.Start, day)
			midnight := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
			startAt := midnight.Add(time.Duration(startMin) * time.Minute)
			endAt := midnight.Add(time.Duration(endMin) * time.Minute)

			event := cal.AddEvent(eventUID(r, s, day))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(startAt)
			event.SetEndAt(endAt)
			event.SetSummary(summary(r))
			event.SetLocation(s.Room)
			event.SetDescription(description(r))
			event.AddProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", term.Weeks))
			added++
		}
	}

	if added == 0 {
		return ErrNoSchedules
	}
	return cal.SerializeTo(w)
}

func firstOnOrAfter(t time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}

func eventUID(r *roster.Roster, s roster.Schedule, day time.Weekday) string {
	name := strings.Join([]string{r.CourseCode, r.Section, s.Key(), day.String()}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

func summary(r *roster.Roster) string {
	return fmt.Sprintf("%s %s", r.CourseCode, r.SubjectName)
}

func description(r *roster.Roster) string {
	lines := []string{fmt.Sprintf("Section: %s", r.Section)}
	if r.FacultyName != "" {
		lines = append(lines, fmt.Sprintf("Faculty: %s", r.FacultyName))
	}
	lines = append(lines, fmt.Sprintf("Students: %d", len(r.Students)))
	return strings.Join(lines, "\n")
}
