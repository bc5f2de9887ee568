package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/database"
)

func TestSeedProjects(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &model.ProjectRecord{}))

	embedded, err := catalog.Open(context.Background(), catalog.EmbeddedSource{})
	require.NoError(t, err)
	projects := embedded.All()

	created, err := SeedProjects(db, projects)
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	// seeding again is a no-op
	created, err = SeedProjects(db, projects)
	require.NoError(t, err)
	assert.Zero(t, created)

	var count int64
	require.NoError(t, db.Model(&model.ProjectRecord{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	store, err := catalog.Open(context.Background(), catalog.DatabaseSource{DB: db})
	require.NoError(t, err)
	assert.Equal(t, embedded.All(), store.All())
}
