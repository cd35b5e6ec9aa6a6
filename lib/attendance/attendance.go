package attendance

import (
	"context"
	"math"
	"regexp"
	"strings"

	"samvidha-backend/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("samvidha.lib.attendance")

// Row is one scraped table row. Both access modes are kept: the
// ordered cell texts for data rows and the full text for rows that
// only carry a course header.
type Row struct {
	Cells    []string
	FullText string
}

const (
	StatusShortage    = "Shortage"
	StatusCondonation = "Condonation"
)

type Subject struct {
	Name       string  `json:"name"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

type Day struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

type Overall struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
	Success    bool    `json:"success"`
	Message    string  `json:"message,omitempty"`
}

// Result is built once per scrape and not mutated after it is
// returned.
type Result struct {
	Subjects map[string]*Subject `json:"subjects"`
	Daily    map[string]*Day     `json:"daily"`
	Streak   map[string]string   `json:"streak"`
	Overall  Overall             `json:"overall"`
}

// matches a course header like "ACSD29 - Engineering Design Project",
// separator may be a dash, a colon or an en-dash
var courseHeaderRegex = regexp.MustCompile(`^\s*([A-Z]{2,}\d+)\s*[-:\x{2013}]\s*(.+)$`)

var headerMarkers = []string{"s.no"}

// Calculate derives per-subject and per-day statistics from the
// scraped rows. When the table scan finds nothing and raw page text
// was supplied, the text is re-scanned line by line instead. Malformed
// rows degrade to zero counts, they never produce an error.
func Calculate(ctx context.Context, rows []Row, pageText string) Result {
	_, span := tracer.Start(ctx, "Calculate")
	defer span.End()

	agg := newAggregator()
	agg.scanRows(rows)

	if len(agg.result.Daily) == 0 && pageText != "" {
		span.AddEvent("falling back to page text scan")
		agg.scanText(pageText)
	}

	agg.finalize()

	span.SetAttributes(
		attribute.Int("subjects", len(agg.result.Subjects)),
		attribute.Int("days", len(agg.result.Daily)),
	)
	return agg.result
}

type aggregator struct {
	result       Result
	courseCode   string
	courseName   string
	totalPresent int
	totalAbsent  int
}

func newAggregator() *aggregator {
	return &aggregator{
		result: Result{
			Subjects: map[string]*Subject{},
			Daily:    map[string]*Day{},
			Streak:   map[string]string{},
		},
	}
}

// getOrCreate returns the subject for code, creating it with zero
// counts if missing. Existing counts are never overwritten.
func getOrCreate(subjects map[string]*Subject, code, name string) *Subject {
	if s, ok := subjects[code]; ok {
		return s
	}
	s := &Subject{Name: name}
	subjects[code] = s
	return s
}

func (a *aggregator) scanRows(rows []Row) {
	for _, row := range rows {
		text := strings.TrimSpace(row.FullText)
		if text == "" {
			continue
		}

		if m := courseHeaderRegex.FindStringSubmatch(text); m != nil {
			a.courseCode = strings.TrimSpace(m[1])
			a.courseName = strings.TrimSpace(m[2])
			getOrCreate(a.result.Subjects, a.courseCode, a.courseName)
			continue
		}

		if len(row.Cells) < 5 || isHeaderRow(row.Cells) {
			continue
		}

		// columns: serial, date, period, topic, status
		serial := strings.TrimSpace(row.Cells[0])
		if serial == "" || serial[0] < '0' || serial[0] > '9' {
			continue
		}

		date, err := ParseDate(row.Cells[1])
		if err != nil {
			continue
		}
		a.record(date, row.Cells[4])
	}
}

func isHeaderRow(cells []string) bool {
	for _, c := range cells {
		if textutil.ContainsAny(c, headerMarkers) {
			return true
		}
	}
	return false
}

// record classifies a status cell and bumps the daily, subject and
// overall counters in lockstep. Statuses that are neither present nor
// absent are ignored.
func (a *aggregator) record(date, status string) {
	up := strings.ToUpper(status)
	var present bool
	switch {
	case strings.Contains(up, "PRESENT"):
		present = true
	case strings.Contains(up, "ABSENT"):
		present = false
	default:
		return
	}

	day := a.result.Daily[date]
	if day == nil {
		day = &Day{}
		a.result.Daily[date] = day
	}

	var subject *Subject
	if a.courseCode != "" {
		subject = getOrCreate(a.result.Subjects, a.courseCode, a.courseName)
	}

	if present {
		day.Present++
		a.totalPresent++
		if subject != nil {
			subject.Present++
		}
	} else {
		day.Absent++
		a.totalAbsent++
		if subject != nil {
			subject.Absent++
		}
	}
}

func (a *aggregator) finalize() {
	for _, s := range a.result.Subjects {
		if s.Present+s.Absent == 0 {
			continue
		}
		s.Percentage = percentage(s.Present, s.Absent)
		s.Status = statusFor(s.Percentage)
	}

	if a.totalPresent+a.totalAbsent == 0 {
		a.result.Overall.Message = "No attendance rows found."
	} else {
		a.result.Overall = Overall{
			Present:    a.totalPresent,
			Absent:     a.totalAbsent,
			Percentage: percentage(a.totalPresent, a.totalAbsent),
			Success:    true,
		}
	}

	for date, day := range a.result.Daily {
		if day.Absent > 0 {
			a.result.Streak[date] = "red"
		} else {
			a.result.Streak[date] = "green"
		}
	}
}

func percentage(present, absent int) float64 {
	total := present + absent
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

func statusFor(percentage float64) string {
	switch {
	case percentage < 65:
		return StatusShortage
	case percentage < 75:
		return StatusCondonation
	default:
		return ""
	}
}
