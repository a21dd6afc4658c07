package workforce

import "time"

// AuditReport summarizes a snapshot for the check and stats commands: how many
// records arrived, why the dropped ones dropped, and how many source values
// will render as defaults instead of real figures.
type AuditReport struct {
	Records   int
	Employees int
	Externals int

	// Exclusion counts. Each dropped record is counted once, under the first
	// rule that drops it: variant, then status, then name.
	NoVariant         int
	InactiveEmployees int
	InactiveExternals int
	Unnamed           int

	// Visible is the number of rows a projection of this snapshot yields.
	Visible int

	// Value quality across visible persons. Rates cover the five rate cells
	// of each row; earnings cover the previous-month lookup, employees only.
	MissingRates      int
	MalformedRates    int
	MissingEarnings   int
	MalformedEarnings int
}

// Audit inspects records against the current wall clock. See AuditAt.
func Audit(records []Record) AuditReport {
	return AuditAt(time.Now(), records)
}

// AuditAt walks records with the same predicates the projector applies and
// tallies what it keeps, what it drops, and which kept values only render
// because of the formatting fallbacks. now fixes the earnings month exactly
// as in ProjectAt.
func AuditAt(now time.Time, records []Record) AuditReport {
	prevKey := PreviousMonthKey(now)
	rep := AuditReport{Records: len(records)}

	for _, rec := range records {
		s, ok := rec.subject()
		if !ok {
			rep.NoVariant++
			continue
		}
		kind := rec.Kind()
		if kind == KindEmployee {
			rep.Employees++
		} else {
			rep.Externals++
		}
		if !s.active {
			if kind == KindEmployee {
				rep.InactiveEmployees++
			} else {
				rep.InactiveExternals++
			}
			continue
		}
		if s.firstname == "" || s.lastname == "" {
			rep.Unnamed++
			continue
		}
		rep.Visible++

		rates := []string{
			s.util.lastTwelve(),
			s.util.yearToDate(),
			s.util.monthRate(trackedMonths[0]),
			s.util.monthRate(trackedMonths[1]),
			s.util.monthRate(trackedMonths[2]),
		}
		for _, r := range rates {
			switch {
			case r == "":
				rep.MissingRates++
			case !parsesAsAmount(r):
				rep.MalformedRates++
			}
		}

		if kind != KindEmployee {
			continue
		}
		found := false
		for _, e := range s.earnings {
			if e.Month == prevKey {
				found = true
				if !parsesAsAmount(e.Costs) {
					rep.MalformedEarnings++
				}
				break
			}
		}
		if !found {
			rep.MissingEarnings++
		}
	}
	return rep
}

// Dropped is the total number of records the projection excludes.
func (r AuditReport) Dropped() int {
	return r.NoVariant + r.InactiveEmployees + r.InactiveExternals + r.Unnamed
}

// Fallbacks is the total number of cells that render a default instead of a
// source value.
func (r AuditReport) Fallbacks() int {
	return r.MissingRates + r.MalformedRates + r.MissingEarnings + r.MalformedEarnings
}
