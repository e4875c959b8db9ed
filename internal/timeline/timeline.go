// Package timeline formats career entry dates and tenures for display.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-journal/internal/types"
)

// Present labels the open end of a current role
const Present = "Present"

// FormatMonth renders a YYYY-MM-DD date as "Jan 2022". Input that is not a date is
// returned unchanged.
func FormatMonth(date string) string {
	t, err := time.Parse(types.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("Jan 2006")
}

// Period renders the span of an entry, e.g. "Jan 2022 - Present"
func Period(e types.CareerEntry) string {
	end := Present
	if !e.IsCurrentRole && e.HasEndDate() {
		end = FormatMonth(e.EndDate)
	}
	return FormatMonth(e.StartDate) + " - " + end
}

// Months counts whole calendar months between the start of an entry and its end,
// or now for entries without an end date. Days within the month are ignored.
func Months(e types.CareerEntry, now time.Time) (int, bool) {
	start, err := time.Parse(types.DateLayout, strings.TrimSpace(e.StartDate))
	if err != nil {
		return 0, false
	}

	end := now
	if !e.IsCurrentRole && e.HasEndDate() {
		end, err = time.Parse(types.DateLayout, strings.TrimSpace(e.EndDate))
		if err != nil {
			return 0, false
		}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	return months, true
}

// Duration renders the tenure of an entry as "8 months", "2 years" or
// "1 year 3 months". An entry with an unparseable date yields "".
func Duration(e types.CareerEntry, now time.Time) string {
	months, ok := Months(e, now)
	if !ok {
		return ""
	}

	if months < 12 {
		return plural(months, "month")
	}

	years, rest := months/12, months%12
	if rest == 0 {
		return plural(years, "year")
	}
	return plural(years, "year") + " " + plural(rest, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
