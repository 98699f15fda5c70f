package notification

import (
	"context"

	"wanderbook/services/tasks"
	"wanderbook/utils"

	"go.uber.org/zap"
)

// EmailSender delivers booking confirmation emails.
type EmailSender interface {
	SendConfirmation(ctx context.Context, payload tasks.ConfirmationPayload) error
}

// LogEmailSender writes the email to the log instead of a mail gateway.
// TODO: swap in an SMTP transport once an outbound mail account exists.
type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) SendConfirmation(ctx context.Context, payload tasks.ConfirmationPayload) error {
	utils.GetLogger().Info("sending booking confirmation email",
		zap.String("to", payload.CustomerEmail),
		zap.String("reference", payload.Reference),
		zap.String("experience", payload.ExperienceTitle),
		zap.String("date", payload.SelectedDate),
		zap.String("slot", payload.SelectedSlot),
		zap.Int("people", payload.NumberOfPeople),
		zap.Float64("total", payload.TotalPrice))
	return nil
}
