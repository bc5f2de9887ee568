package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sungraze_backend/internal/bootstrap"
	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/enquiry"
	"sungraze_backend/internal/router"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/cron"
	"sungraze_backend/pkg/features"
	"sungraze_backend/pkg/logger"
	"sungraze_backend/pkg/utils/location"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := location.Init(); err != nil {
		log.Fatal("could not initialize location data", zap.Error(err))
	}

	src, closeSource, err := bootstrap.CatalogSource(ctx, cfg)
	if err != nil {
		log.Fatal("could not configure catalog source", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	store, err := catalog.Open(ctx, src)
	closeSource()
	if err != nil {
		log.Fatal("could not load catalog", zap.Error(err))
	}
	log.Info("catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("projects", store.Len()))

	sink, closeSink, err := bootstrap.LeadSink(cfg, log)
	if err != nil {
		log.Fatal("could not configure lead sink", zap.String("sink", cfg.Enquiry.Sink), zap.Error(err))
	}
	defer closeSink()

	stats := enquiry.NewStats()
	sink = stats.Track(sink)
	registry := enquiry.NewRegistry(sink)
	set := features.FromConfig(cfg.Features)

	scheduler := cron.NewScheduler(log)
	if err := scheduler.AddFormSweep(cfg.Enquiry.SweepSchedule, registry, cfg.Enquiry.FormIdleTTL); err != nil {
		log.Fatal("could not schedule form sweep", zap.Error(err))
	}
	if mailer, err := bootstrap.EmailService(cfg, log); err == nil {
		if err := scheduler.AddEnquiryDigest(cfg.Enquiry.DigestSchedule, stats, mailer, cfg.Email.SalesEmail); err != nil {
			log.Fatal("could not schedule enquiry digest", zap.Error(err))
		}
	} else {
		log.Warn("enquiry digest disabled", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := router.New(router.Deps{
		Server:    cfg.Server,
		Store:     store,
		Registry:  registry,
		Sink:      sink,
		Features:  set,
		Logger:    log,
		AccessLog: true,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("server is running", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
	return app.Listen(":" + cfg.Server.Port)
}
