package worker

import (
	"context"
	"errors"
	"fmt"

	"rentify/models"

	"github.com/hibiken/asynq"
)

// AsynqPublisher enqueues booking confirmations.
type AsynqPublisher struct {
	Client *asynq.Client
}

func NewAsynqPublisher(opts asynq.RedisClientOpt) *AsynqPublisher {
	return &AsynqPublisher{Client: asynq.NewClient(opts)}
}

func (p *AsynqPublisher) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	task, opts, err := NewBookingConfirmedTask(booking)
	if err != nil {
		return err
	}
	if _, err := p.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue confirmation for booking %s: %w", booking.ID, err)
	}
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.Client.Close()
}
