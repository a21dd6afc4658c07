package workforce

import "time"

// trackedMonths is the fixed three-month window the dashboard breaks out into
// individual columns. The export's lastThreeMonthsIndividually entries are
// matched against these names literally.
var trackedMonths = [3]string{"May", "June", "July"}

// PreviousMonthKey returns the "YYYY-MM" key of the calendar month before now,
// wrapping the year in January. It anchors to the first of the month before
// stepping back because AddDate normalizes day overflow (Mar 31 minus one
// month would land in March again).
func PreviousMonthKey(now time.Time) string {
	y, m, _ := now.Date()
	return time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
