package booking

import (
	"context"

	"wanderbook/models"

	"github.com/hibiken/asynq"
)

// BookingService defines the booking write and lookup operations.
type BookingService interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.BookingDetail, error)
}

// CatalogCache invalidates cached experience documents after a write.
type CatalogCache interface {
	Invalidate(ctx context.Context, id string) error
}

// TaskEnqueuer submits background tasks. Satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
