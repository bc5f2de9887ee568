package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"sungraze_backend/internal/enquiry"
	"sungraze_backend/pkg/queue"
)

// Processor is plugged into the asynq worker loop.
type Processor struct {
	sink   enquiry.LeadSink
	logger *zap.Logger
}

// NewProcessor delivers queued enquiries to sink.
func NewProcessor(sink enquiry.LeadSink, logger *zap.Logger) *Processor {
	return &Processor{sink: sink, logger: logger}
}

// Handler registers the delivery job handler.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.DeliverEnquiryTask, p.handleDeliver)
	return mux
}

func (p *Processor) handleDeliver(ctx context.Context, task *asynq.Task) error {
	payload, err := queue.DecodeDelivery(task)
	if err != nil {
		// retrying will not fix a malformed payload
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	if err := p.sink.Deliver(ctx, payload); err != nil {
		p.logger.Warn("enquiry delivery failed",
			zap.String("reference", payload.Reference),
			zap.Error(err),
		)
		return err
	}
	p.logger.Info("enquiry delivered", zap.String("reference", payload.Reference))
	return nil
}
