package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSchedules(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Schedule
	}{
		{
			name:  "labeled cell",
			lines: []string{"Schedule(s),,,M 1:00 PM - 2:30 PM (Makeshift-06),,"},
			want:  []Schedule{{Day: "M", Time: "1:00 PM - 2:30 PM", Room: "Makeshift-06"}},
		},
		{
			name: "continuation rows",
			lines: []string{
				"Schedule(s),,,M 1:00 PM - 2:30 PM (Makeshift-06),,",
				",,,,,WF 7:30 AM - 9:00 AM ( Lab 2 ),,",
			},
			want: []Schedule{
				{Day: "M", Time: "1:00 PM - 2:30 PM", Room: "Makeshift-06"},
				{Day: "WF", Time: "7:30 AM - 9:00 AM", Room: "Lab 2"},
			},
		},
		{
			name: "repeated triples collapse",
			lines: []string{
				"Schedule(s),,,M 1:00 PM - 2:30 PM (Makeshift-06),,",
				"M 1:00 PM - 2:30 PM (Makeshift-06)",
				",,,M 1:00PM-2:30 PM (Makeshift-06)",
			},
			want: []Schedule{{Day: "M", Time: "1:00 PM - 2:30 PM", Room: "Makeshift-06"}},
		},
		{
			name:  "several on one line",
			lines: []string{"T 8:00 AM - 9:00 AM (R1) S 10:00 AM - 1:00 PM (R2)"},
			want: []Schedule{
				{Day: "T", Time: "8:00 AM - 9:00 AM", Room: "R1"},
				{Day: "S", Time: "10:00 AM - 1:00 PM", Room: "R2"},
			},
		},
		{
			name:  "missing room",
			lines: []string{"M 1:00 PM - 2:30 PM"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectSchedules(tt.lines))
		})
	}
}

func TestScheduleStrategies(t *testing.T) {
	assert.Nil(t, scheduleCells("no label here"))
	assert.Equal(t, []string{"Schedule", "M 1:00 PM - 2:30 PM (R1)"}, scheduleCells("Schedule,M 1:00 PM - 2:30 PM (R1)"))
	assert.Nil(t, continuationRow("M 1:00 PM - 2:30 PM (R1)"))
	assert.Equal(t, []string{"M 1:00 PM - 2:30 PM (R1)"}, continuationRow(",,,M 1:00 PM - 2:30 PM (R1)"))
	assert.Equal(t, []string{"TF 1:00 PM - 2:30 PM (R1)"}, continuationRow(", TF 1:00 PM - 2:30 PM (R1)"))
}

func TestScheduleWeekdays(t *testing.T) {
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, Schedule{Day: "MWF"}.Weekdays())
	// T is always read as Tuesday.
	assert.Equal(t, []time.Weekday{time.Tuesday}, Schedule{Day: "TT"}.Weekdays())
	assert.Nil(t, Schedule{Day: "X"}.Weekdays())
}

func TestScheduleSpan(t *testing.T) {
	start, end, err := Schedule{Time: "1:00 PM - 2:30 PM"}.Span()
	require.NoError(t, err)
	assert.Equal(t, 13*60, start)
	assert.Equal(t, 14*60+30, end)

	start, _, err = Schedule{Time: "12:15 AM - 1:00 AM"}.Span()
	require.NoError(t, err)
	assert.Equal(t, 15, start)

	_, _, err = Schedule{Time: "2:30 PM - 1:00 PM"}.Span()
	assert.Error(t, err)
	_, _, err = Schedule{Time: "noon"}.Span()
	assert.Error(t, err)
}

func TestScheduleKey(t *testing.T) {
	assert.Equal(t, "M|1:00 PM - 2:30 PM|Makeshift-06",
		Schedule{Day: "M", Time: "1:00 PM - 2:30 PM", Room: "Makeshift-06"}.Key())
}
