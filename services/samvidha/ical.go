package samvidha

import (
	"fmt"
	"sort"
	"time"

	"samvidha-backend/lib/attendance"

	ics "github.com/arran4/golang-ical"
)

// StreakCalendar renders the per-day view as an iCalendar feed: one
// all-day event per date, red when any session that day was missed,
// green otherwise.
func StreakCalendar(result attendance.Result) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//samvidha-backend//attendance//EN")

	dates := make([]string, 0, len(result.Daily))
	for date := range result.Daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day := result.Daily[date]
		start, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, err
		}

		event := cal.AddEvent(fmt.Sprintf("%s@samvidha-backend", date))
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetDescription(result.Streak[date])
		if day.Absent > 0 {
			event.SetSummary(fmt.Sprintf(
				"Absent %d of %d sessions", day.Absent, day.Present+day.Absent,
			))
		} else {
			event.SetSummary(fmt.Sprintf("Present all %d sessions", day.Present))
		}
	}

	return cal, nil
}
