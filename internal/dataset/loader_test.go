package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"utilboard/internal/workforce"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "workforce.json"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "workforce.json"), snap.Path)
	assert.False(t, snap.LoadedAt.IsZero())
	_, err = uuid.Parse(snap.LoadID)
	assert.NoError(t, err, "LoadID should be a UUID")

	require.Len(t, snap.Records, 7)

	jane := snap.Records[0]
	require.Equal(t, workforce.KindEmployee, jane.Kind())
	assert.Equal(t, "Jane", jane.Employee.Firstname)
	assert.Equal(t, "Aktiv", jane.Employee.StatusAggregation.Status)
	assert.Equal(t, "0.87", jane.Employee.Utilisation.LastTwelveMonths)
	assert.Len(t, jane.Employee.CostsByMonth.PotentialEarningsByMonth, 2)

	eva := snap.Records[3]
	require.Equal(t, workforce.KindExternal, eva.Kind())
	assert.Equal(t, "active", eva.External.Status)

	assert.Equal(t, workforce.KindNone, snap.Records[6].Kind())
}

func TestLoad_FreshLoadIDPerLoad(t *testing.T) {
	path := filepath.Join("testdata", "workforce.json")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.NotEqual(t, first.LoadID, second.LoadID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"employees": {`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestLoad_EmptyAndNullDocuments(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0644))
	snap, err := Load(empty)
	require.NoError(t, err)
	assert.Empty(t, snap.Records)

	null := filepath.Join(dir, "null.json")
	require.NoError(t, os.WriteFile(null, []byte(`null`), 0644))
	snap, err = Load(null)
	require.NoError(t, err)
	assert.Empty(t, snap.Records)
}

func TestLoad_ProjectsFromDisk(t *testing.T) {
	// End to end over the fixture: load from disk, project, and check who
	// survived. Jane, Max, and Eva are the only active, fully named persons.
	snap, err := Load(filepath.Join("testdata", "workforce.json"))
	require.NoError(t, err)

	rows := workforce.Project(snap.Records)
	require.Len(t, rows, 3)
	assert.Equal(t, "Jane Doe", rows[0].Person)
	assert.Equal(t, "Max Mustermann", rows[1].Person)
	assert.Equal(t, "Eva Berg", rows[2].Person)
}
