package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/logger"
	"sungraze_backend/pkg/utils/storage"
)

func newPublishCatalogCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "publish-catalog",
		Short: "Upload the catalog JSON to the R2 bucket",
		Long: `publish-catalog validates a catalog file (the bundled one by default) and
uploads it to CATALOG_OBJECT in the configured bucket, where CATALOG_SOURCE=s3
picks it up on the next start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()
			log, err := logger.New(cfg.Server.Env)
			if err != nil {
				return err
			}
			defer log.Sync()

			var src catalog.Source = catalog.EmbeddedSource{}
			if file != "" {
				src = catalog.FileSource{Path: file}
			}
			store, err := catalog.Open(ctx, src)
			if err != nil {
				return err
			}
			// upload the normalised form so derived slugs and prices are explicit
			body, err := json.MarshalIndent(store.All(), "", "  ")
			if err != nil {
				return err
			}

			objects, err := storage.NewObjectStore(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			if err := objects.PutObject(ctx, cfg.Catalog.Object, body, "application/json"); err != nil {
				return err
			}
			log.Info("catalog published",
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("key", cfg.Catalog.Object),
				zap.Int("projects", store.Len()),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Catalog JSON file to publish instead of the bundled one")
	return cmd
}
