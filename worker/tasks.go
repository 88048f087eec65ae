package worker

import (
	"encoding/json"
	"fmt"

	"rentify/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// BookingConfirmedPayload is the body of a booking:confirmed task.
type BookingConfirmedPayload struct {
	BookingID  string `json:"bookingId"`
	RentalID   string `json:"rentalId"`
	RentalName string `json:"rentalName"`
	Location   string `json:"location"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	TotalCost  int64  `json:"totalCost"`
}

// NewBookingConfirmedTask builds the task for a committed booking. The task
// id is the booking id, so enqueueing twice is rejected by the queue.
func NewBookingConfirmedTask(booking *models.Booking) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(BookingConfirmedPayload{
		BookingID:  booking.ID,
		RentalID:   booking.RentalID,
		RentalName: booking.RentalName,
		Location:   booking.Location,
		StartDate:  booking.StartDate.String(),
		EndDate:    booking.EndDate.String(),
		TotalCost:  booking.TotalCost,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode confirmation for booking %s: %w", booking.ID, err)
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{
		asynq.TaskID(booking.ID),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}
