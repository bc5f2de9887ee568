package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"sungraze_backend/internal/model"
)

const (
	// DeliverEnquiryTask carries one accepted enquiry to the worker.
	DeliverEnquiryTask = "enquiry:deliver"

	maxRetry = 5
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewDeliveryTask encodes payload as a delivery task.
func NewDeliveryTask(payload model.EnquiryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(DeliverEnquiryTask, data), nil
}

// DecodeDelivery reads the payload back out of a delivery task.
func DecodeDelivery(task *asynq.Task) (model.EnquiryPayload, error) {
	var payload model.EnquiryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}

// EnqueueDelivery schedules payload for delivery by the worker. The enquiry
// reference is used as the task id so a payload is queued at most once.
func EnqueueDelivery(ctx context.Context, client Enqueuer, payload model.EnquiryPayload) error {
	task, err := NewDeliveryTask(payload)
	if err != nil {
		return err
	}
	opts := []asynq.Option{asynq.MaxRetry(maxRetry)}
	if payload.Reference != "" {
		opts = append(opts, asynq.TaskID(payload.Reference))
	}
	if _, err := client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue delivery task: %w", err)
	}
	return nil
}

// Sink is a lead sink that hands enquiries to the queue. A payload counts as
// delivered once it is queued.
type Sink struct {
	Client Enqueuer
}

func (s Sink) Deliver(ctx context.Context, payload model.EnquiryPayload) error {
	return EnqueueDelivery(ctx, s.Client, payload)
}
