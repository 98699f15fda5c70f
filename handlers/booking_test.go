package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wanderbook/models"
	"wanderbook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) GetByReference(ctx context.Context, reference string) (*models.BookingDetail, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingDetail), args.Error(1)
}

func newBookingRouter(service booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(service, zap.NewNop())
	r := gin.New()
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings/:reference", h.GetBookingHandler)
	return r
}

func bookingPayload() []byte {
	body, _ := json.Marshal(gin.H{
		"experienceId":   "exp-1",
		"customerName":   "Asha Nair",
		"customerEmail":  "asha@example.com",
		"customerPhone":  "+91-99999-11111",
		"selectedDate":   "2025-12-01",
		"selectedSlot":   "10:00",
		"numberOfPeople": 3,
		"totalPrice":     3600,
	})
	return body
}

func TestCreateBookingHandler_Success(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	created := &models.Booking{
		ID:               "bk-1",
		ExperienceID:     "exp-1",
		BookingReference: "EXP-ABC123-XY9Z",
		Status:           models.StatusConfirmed,
		TotalPrice:       3600,
	}
	service.On("Create", mock.Anything, mock.AnythingOfType("models.BookingInput")).Return(created, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    models.Booking `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking created successfully", resp.Message)
	assert.Equal(t, "EXP-ABC123-XY9Z", resp.Data.BookingReference)
}

func TestCreateBookingHandler_MalformedJSON(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Create")
}

func TestCreateBookingHandler_ValidationError(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("Create", mock.Anything, mock.Anything).
		Return(nil, &booking.ValidationError{Message: "All required fields must be provided"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All required fields must be provided")
}

func TestCreateBookingHandler_ExperienceNotFound(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("Create", mock.Anything, mock.Anything).
		Return(nil, &booking.NotFoundError{Resource: "Experience"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Experience not found")
}

func TestCreateBookingHandler_CapacityError(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("Create", mock.Anything, mock.Anything).
		Return(nil, &booking.CapacityError{Remaining: 2})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only 2 spots available for this slot")
}

func TestGetBookingHandler_Found(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	detail := &models.BookingDetail{
		Booking: models.Booking{
			ID:               "bk-1",
			BookingReference: "EXP-ABC123-XY9Z",
			ExperienceTitle:  "Sunrise Kayaking",
		},
	}
	service.On("GetByReference", mock.Anything, "EXP-ABC123-XY9Z").Return(detail, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/bookings/EXP-ABC123-XY9Z", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunrise Kayaking")
}

func TestGetBookingHandler_NotFound(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("GetByReference", mock.Anything, "EXP-MISSING-0000").
		Return(nil, &booking.NotFoundError{Resource: "Booking"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/bookings/EXP-MISSING-0000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}
