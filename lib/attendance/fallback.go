package attendance

import (
	"regexp"
	"strings"
)

// first occurrence of a "03 Sep, 2025 ... PRESENT" shaped fragment
var fallbackLineRegex = regexp.MustCompile(`(?i)(\d{1,2})\s+([A-Za-z]{3}),?\s+(\d{4}).*?\b(PRESENT|ABSENT)\b`)

// scanText re-derives attendance from the raw page text, for
// renderings where the table markup collapses but the text survives.
// A course header line opens a sub-scan that lasts until the next
// header line; dated lines inside it feed the same counters as the
// structured pass.
func (a *aggregator) scanText(pageText string) {
	a.courseCode = ""
	a.courseName = ""

	for _, line := range strings.Split(pageText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := courseHeaderRegex.FindStringSubmatch(line); m != nil {
			a.courseCode = strings.TrimSpace(m[1])
			a.courseName = strings.TrimSpace(m[2])
			getOrCreate(a.result.Subjects, a.courseCode, a.courseName)
			continue
		}

		m := fallbackLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, err := ParseDate(m[1] + " " + canonicalMonth(m[2]) + ", " + m[3])
		if err != nil {
			continue
		}
		a.record(date, m[4])
	}
}

// time.Parse wants "Sep", the text match is case-insensitive
func canonicalMonth(m string) string {
	return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
}
