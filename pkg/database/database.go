package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres catalog database.
func Connect(dsn string) (*gorm.DB, error) {
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // pgbouncer in transaction mode has no prepared statements
	}

	gormConfig := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Error),
		PrepareStmt: false,
	}

	db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	// the catalog is read once at startup, a small pool is plenty
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)

	zap.L().Info("database connected")
	return db, nil
}

// Migrate creates missing tables and updates existing ones.
func Migrate(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if !db.Migrator().HasTable(model) {
			if err := db.Migrator().CreateTable(model); err != nil {
				return fmt.Errorf("create table for %T: %w", model, err)
			}
			zap.L().Info("created table", zap.String("model", fmt.Sprintf("%T", model)))
			continue
		}
		if err := db.Migrator().AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
