package attendance

import (
	"fmt"
	"strings"
	"time"
)

// attempted in order, the portal usually renders the comma form
var dateInputFormats = []string{"2 Jan, 2006", "2 Jan 2006"}

// ParseDate normalizes a scraped date cell to YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateInputFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date: %q", s)
}
