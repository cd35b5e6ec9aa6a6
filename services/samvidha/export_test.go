package samvidha

import (
	"strings"
	"testing"

	"samvidha-backend/lib/attendance"

	"github.com/stretchr/testify/require"
)

func exportResult() attendance.Result {
	return attendance.Result{
		Subjects: map[string]*attendance.Subject{
			"ACSD29": {
				Name:       "Engineering Design Project",
				Present:    1,
				Absent:     1,
				Percentage: 50.0,
				Status:     attendance.StatusShortage,
			},
			"AHSD11": {
				Name:       "Applied Physics",
				Present:    2,
				Percentage: 100.0,
			},
		},
		Daily: map[string]*attendance.Day{
			"2025-09-03": {Present: 2},
			"2025-09-04": {Present: 1, Absent: 1},
		},
		Streak: map[string]string{
			"2025-09-03": "green",
			"2025-09-04": "red",
		},
		Overall: attendance.Overall{
			Present:    3,
			Absent:     1,
			Percentage: 75.0,
			Success:    true,
		},
	}
}

func TestStreakCalendar(t *testing.T) {
	cal, err := StreakCalendar(exportResult())
	require.NoError(t, err)

	serialized := cal.Serialize()
	require.Contains(t, serialized, "BEGIN:VCALENDAR")
	require.Contains(t, serialized, "20250903")
	require.Contains(t, serialized, "Present all 2 sessions")
	require.Contains(t, serialized, "Absent 1 of 2 sessions")
	require.Equal(t, 2, strings.Count(serialized, "BEGIN:VEVENT"))
}

func TestSubjectReport(t *testing.T) {
	f, err := SubjectReport(exportResult())
	require.NoError(t, err)
	sheet := f.GetSheetName(0)

	expected := map[string]string{
		"A1": "S.No",
		"B2": "ACSD29",
		"C2": "Engineering Design Project",
		"G2": "Shortage",
		"B3": "AHSD11",
		"F3": "100",
		"B5": "Overall",
		"F5": "75",
	}
	for cell, want := range expected {
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		require.Equal(t, want, got, "cell %s", cell)
	}
}
