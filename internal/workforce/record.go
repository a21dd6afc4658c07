// Package workforce holds the utilisation dashboard's domain model: the raw
// person records as they arrive from the HR export and the pure projection
// that turns them into display rows.
package workforce

// Employee status values come from the upstream HR system, which reports
// employment state in German. Externals are tracked by a different system
// that uses plain English status strings.
const (
	employeeInactiveStatus = "Inaktiv"
	externalActiveStatus   = "active"
)

// Kind identifies which variant of a Record is populated.
type Kind int

const (
	KindNone Kind = iota
	KindEmployee
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindEmployee:
		return "employee"
	case KindExternal:
		return "external"
	default:
		return "none"
	}
}

// Record is a single entry of the workforce export. Exactly one of the two
// variant fields is expected to be set; when both are, the employee variant
// wins so a record is never read through two variants.
type Record struct {
	Employee *Employee `json:"employees,omitempty"`
	External *External `json:"externals,omitempty"`
}

// Kind resolves the populated variant.
func (r Record) Kind() Kind {
	switch {
	case r.Employee != nil:
		return KindEmployee
	case r.External != nil:
		return KindExternal
	default:
		return KindNone
	}
}

// Employee is the in-house staff variant of a record.
type Employee struct {
	Firstname         string             `json:"firstname"`
	Lastname          string             `json:"lastname"`
	StatusAggregation *StatusAggregation `json:"statusAggregation,omitempty"`
	Utilisation       *Utilisation       `json:"workforceUtilisation,omitempty"`
	CostsByMonth      *CostsByMonth      `json:"costsByMonth,omitempty"`
}

// StatusAggregation carries the HR system's rolled-up employment state.
type StatusAggregation struct {
	Status string `json:"status"`
}

// active reports whether the employee should appear on the dashboard. Only an
// explicit "Inaktiv" status excludes; a missing aggregation counts as active.
func (e *Employee) active() bool {
	return e.StatusAggregation == nil || e.StatusAggregation.Status != employeeInactiveStatus
}

// earnings returns the employee's potential earnings series, or nil when the
// export carried no costs block.
func (e *Employee) earnings() []MonthEarnings {
	if e.CostsByMonth == nil {
		return nil
	}
	return e.CostsByMonth.PotentialEarningsByMonth
}

// External is the contractor variant of a record. Contractors have no costs
// block; their earnings are not tracked by the export.
type External struct {
	Firstname   string       `json:"firstname"`
	Lastname    string       `json:"lastname"`
	Status      string       `json:"status"`
	Utilisation *Utilisation `json:"workforceUtilisation,omitempty"`
}

// active reports whether the external should appear on the dashboard. Unlike
// employees, externals are excluded unless their status is exactly "active";
// states like "pending" or "incomplete" stay hidden.
func (x *External) active() bool {
	return x.Status == externalActiveStatus
}

// CostsByMonth wraps the employee earnings series.
type CostsByMonth struct {
	PotentialEarningsByMonth []MonthEarnings `json:"potentialEarningsByMonth"`
}

// MonthEarnings is one month's potential earnings, keyed by "YYYY-MM".
// The amount arrives as a string and may be absent or malformed.
type MonthEarnings struct {
	Month string `json:"month"`
	Costs string `json:"costs"`
}

// Utilisation carries the utilisation rates of a person. All rates are
// fractions serialized as strings ("0.893" means 89.3%).
type Utilisation struct {
	LastTwelveMonths string      `json:"utilisationRateLastTwelveMonths,omitempty"`
	YearToDate       string      `json:"utilisationRateYearToDate,omitempty"`
	LastThreeMonths  []MonthRate `json:"lastThreeMonthsIndividually,omitempty"`
}

// MonthRate is one month's utilisation rate. Month is the English month name
// as the export writes it ("May", "June", "July").
type MonthRate struct {
	Month string `json:"month"`
	Rate  string `json:"utilisationRate"`
}

// lastTwelve returns the past-twelve-months rate, tolerating a nil receiver.
func (u *Utilisation) lastTwelve() string {
	if u == nil {
		return ""
	}
	return u.LastTwelveMonths
}

// yearToDate returns the year-to-date rate, tolerating a nil receiver.
func (u *Utilisation) yearToDate() string {
	if u == nil {
		return ""
	}
	return u.YearToDate
}

// monthRate returns the rate recorded for the named month. Month names match
// case-sensitively; a missing month yields the empty string.
func (u *Utilisation) monthRate(name string) string {
	if u == nil {
		return ""
	}
	for _, m := range u.LastThreeMonths {
		if m.Month == name {
			return m.Rate
		}
	}
	return ""
}

// subject is the variant-independent view of a record that the projector maps
// from. earnings stays nil for externals.
type subject struct {
	firstname string
	lastname  string
	active    bool
	util      *Utilisation
	earnings  []MonthEarnings
}

// subject normalizes the record into its variant-independent view. The second
// return is false when neither variant is populated.
func (r Record) subject() (subject, bool) {
	switch r.Kind() {
	case KindEmployee:
		e := r.Employee
		return subject{
			firstname: e.Firstname,
			lastname:  e.Lastname,
			active:    e.active(),
			util:      e.Utilisation,
			earnings:  e.earnings(),
		}, true
	case KindExternal:
		x := r.External
		return subject{
			firstname: x.Firstname,
			lastname:  x.Lastname,
			active:    x.active(),
			util:      x.Utilisation,
		}, true
	default:
		return subject{}, false
	}
}
