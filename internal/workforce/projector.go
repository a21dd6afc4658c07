package workforce

import "time"

// Project converts records into display rows against the current wall clock.
// See ProjectAt for the contract.
func Project(records []Record) []Row {
	return ProjectAt(time.Now(), records)
}

// ProjectAt filters records down to active persons with both names present and
// flattens each survivor into one formatted Row. Records that are neither
// variant, inactive, or missing a name are dropped silently. Row order follows
// record order, the projection has no other state, and the input is never
// mutated; running it twice over the same snapshot yields identical rows.
//
// now only fixes which month the earnings column reads: the calendar month
// before now, so a dashboard rendered in August shows July's figure.
func ProjectAt(now time.Time, records []Record) []Row {
	prevKey := PreviousMonthKey(now)

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		s, ok := rec.subject()
		if !ok || !s.active || s.firstname == "" || s.lastname == "" {
			continue
		}
		rows = append(rows, Row{
			Person:               s.firstname + " " + s.lastname,
			Past12Months:         FormatRate(s.util.lastTwelve()),
			Y2D:                  FormatRate(s.util.yearToDate()),
			May:                  FormatRate(s.util.monthRate(trackedMonths[0])),
			June:                 FormatRate(s.util.monthRate(trackedMonths[1])),
			July:                 FormatRate(s.util.monthRate(trackedMonths[2])),
			NetEarningsPrevMonth: FormatEarnings(earningsFor(s.earnings, prevKey)),
		})
	}
	return rows
}
