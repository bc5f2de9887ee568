package enquiry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/utils/validation"
)

// LeadSink receives one payload per accepted enquiry. Implementations may be
// slow; they are called without any form lock held.
type LeadSink interface {
	Deliver(ctx context.Context, payload model.EnquiryPayload) error
}

// SinkFunc adapts a function to LeadSink.
type SinkFunc func(ctx context.Context, payload model.EnquiryPayload) error

func (f SinkFunc) Deliver(ctx context.Context, payload model.EnquiryPayload) error {
	return f(ctx, payload)
}

// LogSink writes the enquiry to the log after Delay. It never fails.
type LogSink struct {
	Logger *zap.Logger
	Delay  time.Duration
}

func (s LogSink) Deliver(ctx context.Context, p model.EnquiryPayload) error {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("enquiry received",
		zap.String("reference", p.Reference),
		zap.String("project", p.ProjectName),
		zap.String("name", p.Name),
		zap.String("email", p.Email),
		zap.String("phone", p.Phone),
		zap.Int("message_length", validation.Length(p.Message)),
	)
	return nil
}

// MultiSink delivers to every sink in order and returns the first error.
// Later sinks still run after an earlier one fails.
type MultiSink []LeadSink

func (m MultiSink) Deliver(ctx context.Context, p model.EnquiryPayload) error {
	var first error
	for _, s := range m {
		if err := s.Deliver(ctx, p); err != nil && first == nil {
			first = err
		}
	}
	return first
}
