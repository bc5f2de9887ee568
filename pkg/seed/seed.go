package seed

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sungraze_backend/internal/model"
)

// SeedProjects writes projects into the projects table in the given order.
// Rows that already exist (same project id or slug) are left as they are.
// It returns the number of rows created.
func SeedProjects(db *gorm.DB, projects []model.Project) (int, error) {
	created := 0
	for i, p := range projects {
		rec, err := model.NewProjectRecord(p, i)
		if err != nil {
			return created, err
		}

		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if result.Error != nil {
			return created, fmt.Errorf("seed project %s: %w", p.ID, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
	}

	zap.L().Info("projects seeded", zap.Int("created", created), zap.Int("total", len(projects)))
	return created, nil
}
