package tui

import (
	"fmt"
	"strings"

	"rosterctl/pkg/roster"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0, 0, 0)
)

// RenderRoster formats a parsed roster for the terminal.
func RenderRoster(r *roster.Roster) string {
	var b strings.Builder

	b.WriteString(titleStyle.Inherit(accentStyle).Render(fmt.Sprintf("%s %s", r.CourseCode, r.SubjectName)))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			value = mutedStyle.Render("(not found)")
		}
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Section", r.Section)
	row("Department", r.Department)
	row("Faculty", r.FacultyName)
	row("Year Level", r.YearLevel)

	b.WriteString("\n" + accentStyle.Render(fmt.Sprintf("Schedule (%d)", len(r.Schedules))) + "\n")
	if len(r.Schedules) == 0 {
		b.WriteString(mutedStyle.Render("  no meeting times found") + "\n")
	}
	for _, s := range r.Schedules {
		b.WriteString(fmt.Sprintf("  %-22s %-20s %s\n", dayNames(s), s.Time, s.Room))
	}

	b.WriteString("\n" + accentStyle.Render(fmt.Sprintf("Students (%d)", len(r.Students))) + "\n")
	for i, s := range r.Students {
		no := s.StudentNo
		if no == "" {
			no = mutedStyle.Render("-")
		}
		b.WriteString(fmt.Sprintf("  %3d. %-12s %s\n", i+1, no, s.FullName))
	}

	return b.String()
}

// dayNames spells out a day code, e.g. "MW" -> "Monday/Wednesday".
func dayNames(s roster.Schedule) string {
	days := s.Weekdays()
	if len(days) == 0 {
		return s.Day
	}
	title := cases.Title(language.English)
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = title.String(strings.ToLower(d.String()))
	}
	return strings.Join(names, "/")
}
