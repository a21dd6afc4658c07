package workforce

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectionClock pins the reference date to August 2026 so the earnings
// column deterministically reads the "2026-07" entry.
var projectionClock = time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

func employee(first, last, status string, util *Utilisation, earnings []MonthEarnings) Record {
	e := &Employee{Firstname: first, Lastname: last, Utilisation: util}
	if status != "" {
		e.StatusAggregation = &StatusAggregation{Status: status}
	}
	if earnings != nil {
		e.CostsByMonth = &CostsByMonth{PotentialEarningsByMonth: earnings}
	}
	return Record{Employee: e}
}

func external(first, last, status string, util *Utilisation) Record {
	return Record{External: &External{
		Firstname:   first,
		Lastname:    last,
		Status:      status,
		Utilisation: util,
	}}
}

func TestProjectAt_EmployeeRow(t *testing.T) {
	records := []Record{
		employee("Jane", "Doe", "Aktiv",
			&Utilisation{
				LastTwelveMonths: "0.89",
				YearToDate:       "0.75",
				LastThreeMonths: []MonthRate{
					{Month: "June", Rate: "0.72"},
				},
			},
			[]MonthEarnings{
				{Month: "2026-07", Costs: "3500"},
			},
		),
	}

	rows := ProjectAt(projectionClock, records)
	require.Len(t, rows, 1)

	want := Row{
		Person:               "Jane Doe",
		Past12Months:         "89.0%",
		Y2D:                  "75.0%",
		May:                  "0%",
		June:                 "72.0%",
		July:                 "0%",
		NetEarningsPrevMonth: "3500 €",
	}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectAt_Filtering(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		kept   bool
	}{
		{
			name:   "active employee",
			record: employee("Jane", "Doe", "Aktiv", nil, nil),
			kept:   true,
		},
		{
			name:   "employee without status aggregation",
			record: employee("John", "Smith", "", nil, nil),
			kept:   true,
		},
		{
			name:   "inactive employee",
			record: employee("Jane", "Doe", "Inaktiv", nil, nil),
			kept:   false,
		},
		{
			name:   "active external",
			record: external("Eva", "Berg", "active", nil),
			kept:   true,
		},
		{
			name:   "pending external",
			record: external("Eva", "Berg", "pending", nil),
			kept:   false,
		},
		{
			name:   "incomplete external",
			record: external("Eva", "Berg", "incomplete", nil),
			kept:   false,
		},
		{
			name:   "external with empty status",
			record: external("Eva", "Berg", "", nil),
			kept:   false,
		},
		{
			name:   "employee missing firstname",
			record: employee("", "Doe", "Aktiv", nil, nil),
			kept:   false,
		},
		{
			name:   "employee missing lastname",
			record: employee("Jane", "", "Aktiv", nil, nil),
			kept:   false,
		},
		{
			name:   "external missing lastname",
			record: external("Eva", "", "active", nil),
			kept:   false,
		},
		{
			name:   "neither variant",
			record: Record{},
			kept:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ProjectAt(projectionClock, []Record{tt.record})
			if tt.kept {
				assert.Len(t, rows, 1)
			} else {
				assert.Empty(t, rows)
			}
		})
	}
}

func TestProjectAt_EmployeeVariantWinsOverExternal(t *testing.T) {
	// A record carrying both variants must be read through the employee side
	// only: the inactive employee status drops it even though the external
	// side looks active.
	rec := Record{
		Employee: &Employee{
			Firstname:         "Jane",
			Lastname:          "Doe",
			StatusAggregation: &StatusAggregation{Status: "Inaktiv"},
		},
		External: &External{Firstname: "Jane", Lastname: "Doe", Status: "active"},
	}

	rows := ProjectAt(projectionClock, []Record{rec})
	assert.Empty(t, rows)
}

func TestProjectAt_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   Row
	}{
		{
			name:   "employee with no utilisation and no costs",
			record: employee("Jane", "Doe", "Aktiv", nil, nil),
			want: Row{
				Person:               "Jane Doe",
				Past12Months:         "0%",
				Y2D:                  "0%",
				May:                  "0%",
				June:                 "0%",
				July:                 "0%",
				NetEarningsPrevMonth: "0 €",
			},
		},
		{
			name: "employee with missing year to date",
			record: employee("Jane", "Doe", "Aktiv",
				&Utilisation{LastTwelveMonths: "0.893"}, nil),
			want: Row{
				Person:               "Jane Doe",
				Past12Months:         "89.3%",
				Y2D:                  "0%",
				May:                  "0%",
				June:                 "0%",
				July:                 "0%",
				NetEarningsPrevMonth: "0 €",
			},
		},
		{
			name: "employee with malformed values",
			record: employee("Jane", "Doe", "Aktiv",
				&Utilisation{
					LastTwelveMonths: "n/a",
					YearToDate:       "--",
					LastThreeMonths: []MonthRate{
						{Month: "May", Rate: "broken"},
					},
				},
				[]MonthEarnings{{Month: "2026-07", Costs: "not-a-number"}}),
			want: Row{
				Person:               "Jane Doe",
				Past12Months:         "0%",
				Y2D:                  "0%",
				May:                  "0%",
				June:                 "0%",
				July:                 "0%",
				NetEarningsPrevMonth: "0 €",
			},
		},
		{
			name: "employee with earnings under a different month",
			record: employee("Jane", "Doe", "Aktiv", nil,
				[]MonthEarnings{{Month: "2026-06", Costs: "4200"}}),
			want: Row{
				Person:               "Jane Doe",
				Past12Months:         "0%",
				Y2D:                  "0%",
				May:                  "0%",
				June:                 "0%",
				July:                 "0%",
				NetEarningsPrevMonth: "0 €",
			},
		},
		{
			name: "external never has earnings",
			record: external("Eva", "Berg", "active",
				&Utilisation{
					LastTwelveMonths: "0.6",
					YearToDate:       "0.55",
					LastThreeMonths: []MonthRate{
						{Month: "May", Rate: "0.5"},
						{Month: "June", Rate: "0.62"},
						{Month: "July", Rate: "0.7"},
					},
				}),
			want: Row{
				Person:               "Eva Berg",
				Past12Months:         "60.0%",
				Y2D:                  "55.0%",
				May:                  "50.0%",
				June:                 "62.0%",
				July:                 "70.0%",
				NetEarningsPrevMonth: "0 €",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ProjectAt(projectionClock, []Record{tt.record})
			require.Len(t, rows, 1)
			if diff := cmp.Diff(tt.want, rows[0]); diff != "" {
				t.Errorf("row mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectAt_MonthNamesMatchLiterally(t *testing.T) {
	// Lowercase or abbreviated month names in the export do not match the
	// tracked columns.
	rec := employee("Jane", "Doe", "Aktiv",
		&Utilisation{LastThreeMonths: []MonthRate{
			{Month: "may", Rate: "0.4"},
			{Month: "Jun", Rate: "0.5"},
			{Month: "July", Rate: "0.6"},
		}}, nil)

	rows := ProjectAt(projectionClock, []Record{rec})
	require.Len(t, rows, 1)
	assert.Equal(t, "0%", rows[0].May)
	assert.Equal(t, "0%", rows[0].June)
	assert.Equal(t, "60.0%", rows[0].July)
}

func TestProjectAt_OrderPreserved(t *testing.T) {
	records := []Record{
		employee("Anna", "Adler", "Aktiv", nil, nil),
		employee("Bernd", "Brandt", "Inaktiv", nil, nil),
		external("Clara", "Cohn", "active", nil),
		external("Dora", "Dietz", "pending", nil),
		employee("Emil", "Ernst", "", nil, nil),
	}

	rows := ProjectAt(projectionClock, records)
	require.Len(t, rows, 3)

	got := []string{rows[0].Person, rows[1].Person, rows[2].Person}
	want := []string{"Anna Adler", "Clara Cohn", "Emil Ernst"}
	assert.Equal(t, want, got)
}

func TestProjectAt_RowCountNeverExceedsInput(t *testing.T) {
	records := []Record{
		employee("Anna", "Adler", "Aktiv", nil, nil),
		employee("", "Brandt", "Aktiv", nil, nil),
		{},
		external("Clara", "Cohn", "active", nil),
	}

	rows := ProjectAt(projectionClock, records)
	assert.LessOrEqual(t, len(rows), len(records))
	assert.Len(t, rows, 2)
}

func TestProjectAt_Idempotent(t *testing.T) {
	records := []Record{
		employee("Jane", "Doe", "Aktiv",
			&Utilisation{LastTwelveMonths: "0.89"},
			[]MonthEarnings{{Month: "2026-07", Costs: "3500"}}),
		external("Eva", "Berg", "active", &Utilisation{YearToDate: "0.5"}),
	}

	first := ProjectAt(projectionClock, records)
	second := ProjectAt(projectionClock, records)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("projection not idempotent (-first +second):\n%s", diff)
	}
}

func TestProjectAt_EmptyInput(t *testing.T) {
	assert.Empty(t, ProjectAt(projectionClock, nil))
	assert.Empty(t, ProjectAt(projectionClock, []Record{}))
}

func TestProjectAt_JanuaryReadsDecemberEarnings(t *testing.T) {
	january := time.Date(2027, time.January, 5, 9, 0, 0, 0, time.UTC)
	rec := employee("Jane", "Doe", "Aktiv", nil,
		[]MonthEarnings{
			{Month: "2026-12", Costs: "4100"},
			{Month: "2027-01", Costs: "9999"},
		})

	rows := ProjectAt(january, []Record{rec})
	require.Len(t, rows, 1)
	assert.Equal(t, "4100 €", rows[0].NetEarningsPrevMonth)
}
