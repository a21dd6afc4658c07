package workforce

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKind(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   Kind
	}{
		{
			name:   "employee variant",
			record: Record{Employee: &Employee{}},
			want:   KindEmployee,
		},
		{
			name:   "external variant",
			record: Record{External: &External{}},
			want:   KindExternal,
		},
		{
			name:   "both variants resolve to employee",
			record: Record{Employee: &Employee{}, External: &External{}},
			want:   KindEmployee,
		},
		{
			name:   "neither variant",
			record: Record{},
			want:   KindNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Kind())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "employee", KindEmployee.String())
	assert.Equal(t, "external", KindExternal.String())
	assert.Equal(t, "none", KindNone.String())
}

func TestRecordDecode(t *testing.T) {
	raw := `[
		{
			"employees": {
				"firstname": "Jane",
				"lastname": "Doe",
				"statusAggregation": {"status": "Aktiv"},
				"workforceUtilisation": {
					"utilisationRateLastTwelveMonths": "0.89",
					"utilisationRateYearToDate": "0.75",
					"lastThreeMonthsIndividually": [
						{"month": "June", "utilisationRate": "0.72"}
					]
				},
				"costsByMonth": {
					"potentialEarningsByMonth": [
						{"month": "2026-07", "costs": "3500"}
					]
				}
			}
		},
		{
			"externals": {
				"firstname": "Eva",
				"lastname": "Berg",
				"status": "active",
				"workforceUtilisation": {
					"utilisationRateYearToDate": "0.5"
				}
			}
		}
	]`

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	require.Len(t, records, 2)

	emp := records[0]
	require.Equal(t, KindEmployee, emp.Kind())
	assert.Equal(t, "Jane", emp.Employee.Firstname)
	assert.Equal(t, "Doe", emp.Employee.Lastname)
	require.NotNil(t, emp.Employee.StatusAggregation)
	assert.Equal(t, "Aktiv", emp.Employee.StatusAggregation.Status)
	require.NotNil(t, emp.Employee.Utilisation)
	assert.Equal(t, "0.89", emp.Employee.Utilisation.LastTwelveMonths)
	assert.Equal(t, "0.72", emp.Employee.Utilisation.monthRate("June"))
	require.NotNil(t, emp.Employee.CostsByMonth)
	assert.Equal(t, "3500", emp.Employee.CostsByMonth.PotentialEarningsByMonth[0].Costs)

	ext := records[1]
	require.Equal(t, KindExternal, ext.Kind())
	assert.Equal(t, "Eva", ext.External.Firstname)
	assert.Equal(t, "active", ext.External.Status)
	assert.Nil(t, ext.External.Utilisation.LastThreeMonths)
}

func TestUtilisationNilReceiver(t *testing.T) {
	var u *Utilisation
	assert.Equal(t, "", u.lastTwelve())
	assert.Equal(t, "", u.yearToDate())
	assert.Equal(t, "", u.monthRate("May"))
}
