package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"rosterctl/pkg/config"
	"rosterctl/pkg/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedRoster() *roster.Roster {
	return &roster.Roster{
		Section:     "BSIT4D",
		CourseCode:  "IT413",
		SubjectName: "Social and Professional Issues",
		FacultyName: "HABAGAT, MARITES",
		YearLevel:   "4th Year - Baccalaureate",
		Department:  "BSIT",
		Students: []roster.Student{
			{StudentNo: "2022310039", FullName: "ABUTON, Harold Y"},
			{StudentNo: "2022310040", FullName: "BAUTISTA, Ana M"},
			{FullName: "CRUZ, Juan D"},
		},
		Schedules: []roster.Schedule{{Day: "MW", Time: "1:00 PM - 2:30 PM", Room: "Makeshift-06"}},
	}
}

func TestApplyReview(t *testing.T) {
	in := parsedRoster()
	out := applyReview(in, reviewEdits{
		Section:     "bscs-2a",
		FacultyName: "  DELA CRUZ, JUAN ",
		YearLevel:   "2nd Year",
		Keep:        []string{"0", "2"},
	})

	assert.Equal(t, "BSCS2A", out.Section)
	assert.Equal(t, "BSCS", out.Department)
	assert.Equal(t, "DELA CRUZ, JUAN", out.FacultyName)
	assert.Equal(t, "2nd Year", out.YearLevel)
	require.Len(t, out.Students, 2)
	assert.Equal(t, "ABUTON, Harold Y", out.Students[0].FullName)
	assert.Equal(t, "CRUZ, Juan D", out.Students[1].FullName)
	assert.Equal(t, in.Schedules, out.Schedules)

	// The parsed roster is left untouched
	assert.Equal(t, "BSIT4D", in.Section)
	assert.Len(t, in.Students, 3)
}

func TestApplyReview_ClearedSection(t *testing.T) {
	out := applyReview(parsedRoster(), reviewEdits{Keep: []string{"1"}})
	assert.Equal(t, roster.UnknownSection, out.Section)
	assert.Equal(t, "IT", out.Department)
}

func TestValidateSection(t *testing.T) {
	assert.NoError(t, validateSection("BSIT-4D"))
	assert.NoError(t, validateSection(""))
	assert.NoError(t, validateSection("unknown"))
	assert.Error(t, validateSection("Block D"))
}

func TestValidateHex(t *testing.T) {
	assert.NoError(t, validateHex("#FF00FF"))
	assert.Error(t, validateHex("FF00FF"))
	assert.Error(t, validateHex("#GG00FF"))
}

func TestRenderRoster(t *testing.T) {
	out := RenderRoster(parsedRoster())
	assert.Contains(t, out, "IT413 Social and Professional Issues")
	assert.Contains(t, out, "Monday/Wednesday")
	assert.Contains(t, out, "Makeshift-06")
	assert.Contains(t, out, "Students (3)")
	assert.Contains(t, out, "2022310040")
}

func TestDefaultOutputName(t *testing.T) {
	assert.Equal(t, "IT413-BSIT4D.ics", defaultOutputName(parsedRoster(), "", "ics"))
	assert.Equal(t, filepath.Join("exports", "IT413-BSIT4D.csv"), defaultOutputName(parsedRoster(), "exports", "csv"))
}

func TestDescribeConfig(t *testing.T) {
	out := describeConfig(&config.AppConfig{TermStart: "2025-08-11", TermWeeks: 16})
	assert.Contains(t, out, "2025-08-11")
	assert.Contains(t, out, "Term Weeks: 16")
	assert.True(t, strings.Contains(out, config.DefaultTimezone))
}
