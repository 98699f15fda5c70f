package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "wanderbook/database/repository/booking"
	experienceRepo "wanderbook/database/repository/experience"
	"wanderbook/models"
	"wanderbook/services/promo"
	"wanderbook/services/tasks"
	"wanderbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReferenceRetries bounds regeneration attempts when a booking reference
// collides with an existing one.
const maxReferenceRetries = 3

// DefaultBookingService implements BookingService. Cache and Tasks are
// optional; both are best effort and never fail a booking.
type DefaultBookingService struct {
	ExperienceRepo experienceRepo.ExperienceRepository
	BookingRepo    bookingRepo.BookingRepository
	Promo          promo.Evaluator
	Cache          CatalogCache
	Tasks          TaskEnqueuer
}

func validateInput(input models.BookingInput) error {
	if input.ExperienceID == "" ||
		input.CustomerName == "" ||
		input.CustomerEmail == "" ||
		input.CustomerPhone == "" ||
		input.SelectedDate == "" ||
		input.SelectedSlot == "" ||
		input.NumberOfPeople < 1 ||
		input.TotalPrice == 0 {
		return &ValidationError{Message: "All required fields must be provided"}
	}
	return nil
}

// Create validates the request, admits it against slot capacity, prices it
// server-side, and persists the booking together with the seat reservation.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	exp, err := s.ExperienceRepo.GetByID(ctx, input.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Experience"}
		}
		return nil, fmt.Errorf("failed to resolve experience: %w", err)
	}

	day, ok := normalizeDate(input.SelectedDate)
	if !ok {
		return nil, &SelectionError{Message: "Selected date not available"}
	}
	dateEntry := findDate(exp, day)
	if dateEntry == nil {
		return nil, &SelectionError{Message: "Selected date not available"}
	}
	slotEntry := findSlot(dateEntry, input.SelectedSlot)
	if slotEntry == nil {
		return nil, &SelectionError{Message: "Selected slot not available"}
	}

	remaining := slotEntry.Remaining()
	if remaining < input.NumberOfPeople {
		return nil, &CapacityError{Remaining: remaining}
	}

	// An invalid or expired code degrades to zero discount; it never blocks
	// checkout. Only the standalone validation endpoint surfaces the failure.
	var discount float64
	if input.PromoCode != "" {
		if result, err := s.Promo.Evaluate(ctx, input.PromoCode, exp.Price, input.NumberOfPeople); err == nil {
			discount = result.Discount
		} else if !errors.Is(err, promo.ErrNotFound) {
			logger.Warn("promo evaluation failed", zap.String("code", input.PromoCode), zap.Error(err))
		}
	}

	// The client submits a total, but pricing is authoritative server-side.
	total := exp.Price*float64(input.NumberOfPeople) - discount
	if math.Abs(total-input.TotalPrice) > 0.01 {
		logger.Warn("client total price disagrees with server pricing",
			zap.String("experienceId", exp.ID),
			zap.Float64("clientTotal", input.TotalPrice),
			zap.Float64("serverTotal", total))
	}

	now := time.Now()
	booking := &models.Booking{
		ID:               uuid.New().String(),
		ExperienceID:     exp.ID,
		ExperienceTitle:  exp.Title,
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		CustomerPhone:    input.CustomerPhone,
		SelectedDate:     day,
		SelectedSlot:     input.SelectedSlot,
		NumberOfPeople:   input.NumberOfPeople,
		PromoCode:        input.PromoCode,
		Discount:         discount,
		TotalPrice:       total,
		Status:           models.StatusConfirmed,
		BookingReference: newBookingReference(now.UnixMilli()),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for attempt := 0; ; attempt++ {
		err = s.BookingRepo.CreateWithReservation(ctx, booking, slotEntry.Available)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateReference) && attempt < maxReferenceRetries {
			booking.BookingReference = newBookingReference(time.Now().UnixMilli())
			continue
		}
		if errors.Is(err, bookingRepo.ErrCapacityConflict) {
			// A concurrent booking won the seats between our read and the
			// conditional increment; report the fresh remaining count.
			if fresh, rerr := s.freshRemaining(ctx, input.ExperienceID, day, input.SelectedSlot); rerr == nil {
				remaining = fresh
			}
			return nil, &CapacityError{Remaining: remaining}
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, exp.ID); err != nil {
			logger.Warn("failed to invalidate experience cache", zap.String("id", exp.ID), zap.Error(err))
		}
	}

	s.enqueueConfirmation(booking)

	logger.Info("booking created",
		zap.String("reference", booking.BookingReference),
		zap.String("experienceId", booking.ExperienceID),
		zap.Int("people", booking.NumberOfPeople))

	return booking, nil
}

func (s *DefaultBookingService) freshRemaining(ctx context.Context, experienceID, day, slotTime string) (int, error) {
	exp, err := s.ExperienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return 0, err
	}
	return Remaining(exp, day, slotTime)
}

func (s *DefaultBookingService) enqueueConfirmation(booking *models.Booking) {
	if s.Tasks == nil {
		return
	}
	task, err := tasks.NewConfirmationTask(booking)
	if err != nil {
		utils.GetLogger().Warn("failed to build confirmation task", zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task); err != nil {
		utils.GetLogger().Warn("failed to enqueue confirmation task",
			zap.String("reference", booking.BookingReference), zap.Error(err))
	}
}

// GetByReference fetches a booking with its experience snapshot attached.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference string) (*models.BookingDetail, error) {
	booking, err := s.BookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Booking"}
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	detail := &models.BookingDetail{Booking: *booking}

	// The catalog entry may have been removed since the booking was made;
	// the denormalized snapshot on the booking still renders.
	if exp, err := s.ExperienceRepo.GetByID(ctx, booking.ExperienceID); err == nil {
		detail.Experience = exp
	}

	return detail, nil
}
