package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/database"
	"sungraze_backend/pkg/logger"
	"sungraze_backend/pkg/seed"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the catalog into the projects table",
		Long: `Seed migrates the projects table and inserts every project from the bundled
catalog (or --file). Projects already in the table are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(cfg.Server.Env)
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.Database.URL == "" {
				return errors.New("DATABASE_URL is not set")
			}

			var src catalog.Source = catalog.EmbeddedSource{}
			if file != "" {
				src = catalog.FileSource{Path: file}
			}
			// validate before writing anything
			store, err := catalog.Open(cmd.Context(), src)
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db, &model.ProjectRecord{}); err != nil {
				return err
			}
			created, err := seed.SeedProjects(db, store.All())
			if err != nil {
				return err
			}
			log.Info("seed finished", zap.Int("created", created))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Catalog JSON file to seed from instead of the bundled one")
	return cmd
}
