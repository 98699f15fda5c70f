package tasks

import (
	"encoding/json"

	"wanderbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// ConfirmationPayload carries what the confirmation email needs; the worker
// never re-reads the booking document.
type ConfirmationPayload struct {
	Reference       string  `json:"reference"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	ExperienceTitle string  `json:"experienceTitle"`
	SelectedDate    string  `json:"selectedDate"`
	SelectedSlot    string  `json:"selectedSlot"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	TotalPrice      float64 `json:"totalPrice"`
}

// NewConfirmationTask builds the asynq task enqueued after a booking is
// persisted.
func NewConfirmationTask(booking *models.Booking) (*asynq.Task, error) {
	payload := ConfirmationPayload{
		Reference:       booking.BookingReference,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		ExperienceTitle: booking.ExperienceTitle,
		SelectedDate:    booking.SelectedDate,
		SelectedSlot:    booking.SelectedSlot,
		NumberOfPeople:  booking.NumberOfPeople,
		TotalPrice:      booking.TotalPrice,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}
