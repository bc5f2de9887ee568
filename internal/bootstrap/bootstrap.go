// Package bootstrap turns configuration into the catalog source and lead
// sink the commands run with.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/enquiry"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/database"
	"sungraze_backend/pkg/email"
	"sungraze_backend/pkg/queue"
	"sungraze_backend/pkg/utils/storage"
)

var ErrUnknownSink = errors.New("unknown lead sink")

// Cleanup releases whatever a constructor opened. It is never nil.
type Cleanup func()

func noop() {}

// CatalogSource picks the catalog source named by cfg.Catalog.Source.
func CatalogSource(ctx context.Context, cfg *config.Config) (catalog.Source, Cleanup, error) {
	switch cfg.Catalog.Source {
	case "", "embedded":
		return catalog.EmbeddedSource{}, noop, nil
	case "file":
		return catalog.FileSource{Path: cfg.Catalog.File}, noop, nil
	case "s3":
		store, err := storage.NewObjectStore(ctx, cfg.Storage)
		if err != nil {
			return nil, noop, err
		}
		return catalog.ObjectSource{Store: store, Key: cfg.Catalog.Object}, noop, nil
	case "database":
		if cfg.Database.URL == "" {
			return nil, noop, errors.New("DATABASE_URL is required for the database catalog source")
		}
		db, err := database.Connect(cfg.Database.URL)
		if err != nil {
			return nil, noop, err
		}
		if err := database.Migrate(db, &model.ProjectRecord{}); err != nil {
			database.Close(db)
			return nil, noop, err
		}
		return catalog.DatabaseSource{DB: db}, func() { database.Close(db) }, nil
	default:
		return nil, noop, fmt.Errorf("%w %q", catalog.ErrUnknownSource, cfg.Catalog.Source)
	}
}

// EmailService builds the Resend client from cfg.
func EmailService(cfg *config.Config, logger *zap.Logger) (*email.EmailService, error) {
	return email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.From, email.WithLogger(logger))
}

// EmailSink is the sink that actually talks to the mail provider. The worker
// uses it directly; the API uses it when LEAD_SINK=email.
func EmailSink(cfg *config.Config, logger *zap.Logger) (enquiry.LeadSink, error) {
	svc, err := EmailService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return enquiry.NewEmailSink(svc, cfg.Email.SalesEmail, cfg.Features.EnquiryAckEmail, logger), nil
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// LeadSink picks the sink named by cfg.Enquiry.Sink. Every accepted enquiry
// is also logged.
func LeadSink(cfg *config.Config, logger *zap.Logger) (enquiry.LeadSink, Cleanup, error) {
	logSink := enquiry.LogSink{Logger: logger, Delay: cfg.Enquiry.SubmitDelay}

	switch cfg.Enquiry.Sink {
	case "", "log":
		return logSink, noop, nil
	case "email":
		sink, err := EmailSink(cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return enquiry.MultiSink{enquiry.LogSink{Logger: logger}, sink}, noop, nil
	case "queue":
		client := asynq.NewClient(RedisOpt(cfg.Redis))
		sink := queue.Sink{Client: client}
		return enquiry.MultiSink{enquiry.LogSink{Logger: logger}, sink}, func() { client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("%w %q", ErrUnknownSink, cfg.Enquiry.Sink)
	}
}
