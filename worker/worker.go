package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitConfirmationWorker runs the confirmation worker in background and
// returns the server so the caller can shut it down.
func InitConfirmationWorker(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmed, handleBookingConfirmed(logger))

	go func() {
		logger.Info("Starting confirmation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Failed to start confirmation worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Confirmation worker gave up; bookings are still accepted")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleBookingConfirmed(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingConfirmedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid booking confirmation payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if p.BookingID == "" {
			return fmt.Errorf("%w: booking id missing", asynq.SkipRetry)
		}

		logger.Info("Booking confirmed",
			zap.String("bookingID", p.BookingID),
			zap.String("rentalID", p.RentalID),
			zap.String("rentalName", p.RentalName),
			zap.String("location", p.Location),
			zap.String("checkIn", p.StartDate),
			zap.String("checkOut", p.EndDate),
			zap.Int64("totalCost", p.TotalCost))
		return nil
	}
}
