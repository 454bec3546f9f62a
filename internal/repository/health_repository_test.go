package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs1060f25/perdogarcia-hw4/internal/database"
	"github.com/cs1060f25/perdogarcia-hw4/internal/repository"
	"github.com/cs1060f25/perdogarcia-hw4/internal/testutil"
)

func newRepo(t *testing.T) *repository.HealthRepo {
	t.Helper()
	db, err := database.Open(testutil.CreateDB(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewHealthRepo(db)
}

func TestCountyCodeForZip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	code, err := repo.CountyCodeForZip(ctx, "02138")
	require.NoError(t, err)
	assert.Equal(t, "25017", code)

	code, err = repo.CountyCodeForZip(ctx, "90210")
	require.NoError(t, err)
	assert.Equal(t, "06037", code)
}

func TestCountyCodeForZipNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.CountyCodeForZip(context.Background(), "00000")
	assert.True(t, errors.Is(err, repository.ErrZipNotFound))
}

// A ZIP mapped to more than one county resolves to the first stored row.
func TestCountyCodeForZipFirstMatch(t *testing.T) {
	repo := newRepo(t)

	code, err := repo.CountyCodeForZip(context.Background(), "11111")
	require.NoError(t, err)
	assert.Equal(t, "10001", code)
}

func TestRecordsForCountyMeasure(t *testing.T) {
	repo := newRepo(t)

	recs, err := repo.RecordsForCountyMeasure(context.Background(), "25017", "Adult obesity")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, "Adult obesity", r.MeasureName)
		assert.Equal(t, "25017", r.FipsCode)
		assert.Equal(t, "Massachusetts", r.State)
	}
	// Storage order is preserved.
	assert.Equal(t, "2003-2005", recs[0].YearSpan)
	assert.Equal(t, "2004-2006", recs[1].YearSpan)
}

func TestRecordsForCountyMeasureEmpty(t *testing.T) {
	repo := newRepo(t)

	recs, err := repo.RecordsForCountyMeasure(context.Background(), "25017", "Uninsured")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// Blank cells in the source come back as empty strings, never scan errors.
func TestRecordsForCountyMeasureBlankFields(t *testing.T) {
	repo := newRepo(t)

	recs, err := repo.RecordsForCountyMeasure(context.Background(), "25017", "Unemployment")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].CILowerBound)
	assert.Equal(t, "0.0772", recs[0].RawValue)
}

// Lookup values are bound parameters, so SQL syntax in them is inert: the
// queries run fine, match nothing, and the store stays intact.
func TestLookupValuesAreInert(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	payloads := []string{
		`'; DROP TABLE zip_county; --`,
		`02138' OR '1'='1`,
		`02138' UNION SELECT * FROM sqlite_master --`,
		`02138'/**/OR/**/1=1--`,
	}
	for _, p := range payloads {
		_, err := repo.CountyCodeForZip(ctx, p)
		assert.True(t, errors.Is(err, repository.ErrZipNotFound), "zip payload %q", p)

		recs, err := repo.RecordsForCountyMeasure(ctx, "25017", `Adult obesity' OR 1=1 --`)
		require.NoError(t, err)
		assert.Empty(t, recs)
	}

	// The tables are still there and queryable afterwards.
	code, err := repo.CountyCodeForZip(ctx, "02138")
	require.NoError(t, err)
	assert.Equal(t, "25017", code)
}

func TestMissingDatabaseFile(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "no-such.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := repository.NewHealthRepo(db)

	_, err = repo.CountyCodeForZip(context.Background(), "02138")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrStoreNotFound), "got %v", err)
}

func TestClosedPoolIsGenericFailure(t *testing.T) {
	db, err := database.Open(testutil.CreateDB(t))
	require.NoError(t, err)
	repo := repository.NewHealthRepo(db)
	require.NoError(t, db.Close())

	_, err = repo.CountyCodeForZip(context.Background(), "02138")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrZipNotFound))
	assert.False(t, errors.Is(err, repository.ErrStoreNotFound))
}
