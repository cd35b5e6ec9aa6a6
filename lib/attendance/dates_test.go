package attendance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"03 Sep, 2025", "2025-09-03"},
		{"03 Sep 2025", "2025-09-03"},
		{"3 Sep, 2025", "2025-09-03"},
		{"  03 Sep, 2025  ", "2025-09-03"},
		{"21 Dec 2024", "2024-12-21"},
	}
	for _, test := range testCases {
		got, err := ParseDate(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.expected, got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"September 3rd",
		"2025-09-03",
		"03/09/2025",
		"99 Sep, 2025",
	} {
		_, err := ParseDate(input)
		require.Error(t, err, "input %q", input)
	}
}
