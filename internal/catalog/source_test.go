package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sungraze_backend/internal/model"
)

type fakeBucket map[string][]byte

func (b fakeBucket) GetObject(_ context.Context, key string) ([]byte, error) {
	data, ok := b[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, EmbeddedJSON(), 0o644))

	store, err := Open(context.Background(), FileSource{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())
}

func TestFileSourceErrors(t *testing.T) {
	_, err := Open(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not":"a list"}`), 0o644))
	_, err = Open(context.Background(), FileSource{Path: bad})
	assert.ErrorContains(t, err, "decode catalog")
}

func TestObjectSource(t *testing.T) {
	bucket := fakeBucket{"catalog/projects.json": EmbeddedJSON()}

	store, err := Open(context.Background(), ObjectSource{Store: bucket, Key: "catalog/projects.json"})
	require.NoError(t, err)
	_, ok := store.GetBySlug("chola-farms-pollachi")
	assert.True(t, ok)

	_, err = Open(context.Background(), ObjectSource{Store: bucket, Key: "other.json"})
	assert.ErrorContains(t, err, "no such key")
}

func TestEmbeddedJSONIsACopy(t *testing.T) {
	a := EmbeddedJSON()
	a[0] = 'x'
	assert.NotEqual(t, a[0], EmbeddedJSON()[0])
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProjectRecord{}))
	return db
}

func TestDatabaseSourceRoundTrip(t *testing.T) {
	db := openTestDB(t)
	embedded := openEmbedded(t).All()

	// insert in reverse so position, not primary key, drives the order
	for i := len(embedded) - 1; i >= 0; i-- {
		rec, err := model.NewProjectRecord(embedded[i], i)
		require.NoError(t, err)
		require.NoError(t, db.Create(&rec).Error)
	}

	store, err := Open(context.Background(), DatabaseSource{DB: db})
	require.NoError(t, err)
	assert.Equal(t, ids(embedded), ids(store.All()))

	greens, ok := store.GetByID("sungraze-greens")
	require.True(t, ok)
	assert.Equal(t, embedded[0], greens)

	kaveri, _ := store.GetByID("kaveri-farms")
	assert.Nil(t, kaveri.Coordinates)
	assert.Equal(t, embedded[1].Amenities, kaveri.Amenities)
}

func TestDatabaseSourceEmptyTable(t *testing.T) {
	store, err := Open(context.Background(), DatabaseSource{DB: openTestDB(t)})
	require.NoError(t, err)
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Query(Filter{}, SortLatest))
}
