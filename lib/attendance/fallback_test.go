package attendance

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const fallbackPage = `
Course Content
ACSD29 - Engineering Design Project
1 03 Sep, 2025 6 topic PRESENT
2 04 sep 2025 6 topic absent
not an attendance line
AHSD11 - Applied Physics
1 03 Sep, 2025 2 waves Present
`

func TestFallbackTextScan(t *testing.T) {
	result := Calculate(context.Background(), nil, fallbackPage)

	expected := Result{
		Subjects: map[string]*Subject{
			"ACSD29": {
				Name:       "Engineering Design Project",
				Present:    1,
				Absent:     1,
				Percentage: 50.0,
				Status:     StatusShortage,
			},
			"AHSD11": {
				Name:       "Applied Physics",
				Present:    1,
				Percentage: 100.0,
			},
		},
		Daily: map[string]*Day{
			"2025-09-03": {Present: 2},
			"2025-09-04": {Absent: 1},
		},
		Streak: map[string]string{
			"2025-09-03": "green",
			"2025-09-04": "red",
		},
		Overall: Overall{
			Present:    2,
			Absent:     1,
			Percentage: 66.67,
			Success:    true,
		},
	}

	diff := cmp.Diff(expected, result)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestFallbackSkippedWhenStructuredDataExists(t *testing.T) {
	rows := []Row{
		headerRow("ACSD29 - Engineering Design Project"),
		dataRow("1", "03 Sep, 2025", "PRESENT"),
	}
	// same data again as page text; it must not be counted twice
	text := "ACSD29 - Engineering Design Project\n1 03 Sep, 2025 6 topic PRESENT\n"

	result := Calculate(context.Background(), rows, text)

	require.Equal(t, 1, result.Overall.Present)
	require.Equal(t, 1, result.Subjects["ACSD29"].Present)
	require.Equal(t, &Day{Present: 1}, result.Daily["2025-09-03"])
}

func TestFallbackNotUsedWithoutPageText(t *testing.T) {
	result := Calculate(context.Background(), nil, "")
	require.False(t, result.Overall.Success)
}
