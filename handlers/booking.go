package handlers

import (
	"errors"
	"net/http"

	"wanderbook/models"
	"wanderbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookup endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var (
			validationErr *booking.ValidationError
			notFoundErr   *booking.NotFoundError
			selectionErr  *booking.SelectionError
			capacityErr   *booking.CapacityError
		)
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundErr.Error()})
		case errors.As(err, &selectionErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": selectionErr.Message})
		case errors.As(err, &capacityErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": capacityErr.Error()})
		default:
			h.Logger.Error("failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error creating booking",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    created,
	})
}

// GetBookingHandler handles GET /api/bookings/:reference.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	reference := c.Param("reference")

	detail, err := h.Service.GetByReference(c.Request.Context(), reference)
	if err != nil {
		var notFoundErr *booking.NotFoundError
		if errors.As(err, &notFoundErr) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("reference", reference), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching booking",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}
