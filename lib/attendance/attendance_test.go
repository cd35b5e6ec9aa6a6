package attendance

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func dataRow(serial, date, status string) Row {
	return Row{
		Cells:    []string{serial, date, "6", "topic", status},
		FullText: serial + " " + date + " 6 topic " + status,
	}
}

func headerRow(text string) Row {
	return Row{FullText: text}
}

func TestCalculate(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
		{Cells: []string{"S.No", "Date", "Period", "Topic", "Status"}, FullText: "S.No Date Period Topic Status"},
		dataRow("1", "03 Sep, 2025", "PRESENT"),
		dataRow("2", "04 Sep, 2025", "ABSENT"),
	}

	result := Calculate(context.Background(), rows, "")

	expected := Result{
		Subjects: map[string]*Subject{
			"ACSD29": {
				Name:       "Engineering Design Project",
				Present:    1,
				Absent:     1,
				Percentage: 50.0,
				Status:     StatusShortage,
			},
		},
		Daily: map[string]*Day{
			"2025-09-03": {Present: 1},
			"2025-09-04": {Absent: 1},
		},
		Streak: map[string]string{
			"2025-09-03": "green",
			"2025-09-04": "red",
		},
		Overall: Overall{
			Present:    1,
			Absent:     1,
			Percentage: 50.0,
			Success:    true,
		},
	}

	diff := cmp.Diff(expected, result)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestCalculateNoRows(t *testing.T) {
	for _, rows := range [][]Row{
		nil,
		{headerRow("ACSD29 - Engineering Design Project")},
		{{Cells: []string{"S.No", "Date", "Period", "Topic", "Status"}, FullText: "S.No Date Period Topic Status"}},
		{dataRow("1", "not a date", "PRESENT")},
	} {
		result := Calculate(context.Background(), rows, "")
		require.False(t, result.Overall.Success)
		require.Equal(t, "No attendance rows found.", result.Overall.Message)
		require.Empty(t, result.Daily)
	}
}

func TestCalculateHeaderSeparators(t *testing.T) {
	for _, header := range []string{
		"ACSD29 - Engineering Design Project",
		"ACSD29: Engineering Design Project",
		"ACSD29 – Engineering Design Project",
	} {
		rows := []Row{
			headerRow(header),
			dataRow("1", "03 Sep, 2025", "PRESENT"),
		}
		result := Calculate(context.Background(), rows, "")
		sub, ok := result.Subjects["ACSD29"]
		require.True(t, ok, "header %q did not register a subject", header)
		require.Equal(t, "Engineering Design Project", sub.Name)
		require.Equal(t, 1, sub.Present)
	}
}

func TestCalculateRepeatedHeaderKeepsCounts(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
		dataRow("1", "03 Sep, 2025", "PRESENT"),
		headerRow("AHSD11 - Applied Physics"),
		dataRow("1", "03 Sep, 2025", "ABSENT"),
		headerRow("ACSD29 - Engineering Design Project"),
		dataRow("2", "04 Sep, 2025", "PRESENT"),
	}

	result := Calculate(context.Background(), rows, "")

	require.Equal(t, 2, result.Subjects["ACSD29"].Present)
	require.Equal(t, 0, result.Subjects["ACSD29"].Absent)
	require.Equal(t, 1, result.Subjects["AHSD11"].Absent)
	require.Equal(t, &Day{Present: 1, Absent: 1}, result.Daily["2025-09-03"])
}

func TestCalculateIgnoresOtherStatuses(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
		dataRow("1", "03 Sep, 2025", "HOLIDAY"),
		dataRow("2", "04 Sep, 2025", "present"),
	}

	result := Calculate(context.Background(), rows, "")

	require.Equal(t, 1, result.Overall.Present)
	require.Equal(t, 0, result.Overall.Absent)
	require.NotContains(t, result.Daily, "2025-09-03")
}

func TestCalculateRowsWithoutSubject(t *testing.T) {
	rows := []Row{
		dataRow("1", "03 Sep, 2025", "PRESENT"),
	}

	result := Calculate(context.Background(), rows, "")

	require.Empty(t, result.Subjects)
	require.Equal(t, 1, result.Overall.Present)
	require.True(t, result.Overall.Success)
	require.Equal(t, &Day{Present: 1}, result.Daily["2025-09-03"])
}

func TestCalculateSkipsNonNumericSerial(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
		{Cells: []string{"Total", "90%", "-", "-", "PRESENT"}, FullText: "Total 90% - - PRESENT"},
	}

	result := Calculate(context.Background(), rows, "")
	require.False(t, result.Overall.Success)
}

func TestPercentageRounding(t *testing.T) {
	testCases := []struct {
		present  int
		absent   int
		expected float64
	}{
		{1, 2, 33.33},
		{2, 1, 66.67},
		{1, 1, 50.0},
		{3, 0, 100.0},
		{0, 0, 0.0},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, percentage(test.present, test.absent))
	}
}

func TestStatusThresholds(t *testing.T) {
	testCases := []struct {
		percentage float64
		expected   string
	}{
		{64.99, StatusShortage},
		{65.00, StatusCondonation},
		{74.99, StatusCondonation},
		{75.00, ""},
		{0, StatusShortage},
		{100, ""},
	}
	for _, test := range testCases {
		require.Equal(
			t, test.expected, statusFor(test.percentage),
			"percentage %.2f", test.percentage,
		)
	}
}

func TestSubjectWithNoSessionsStaysBlank(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
	}
	text := "AHSD11 - Applied Physics\n03 Sep, 2025 P1 PRESENT\n"

	result := Calculate(context.Background(), rows, text)

	sub := result.Subjects["ACSD29"]
	require.Equal(t, 0.0, sub.Percentage)
	require.Equal(t, "", sub.Status)
}
