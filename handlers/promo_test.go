package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wanderbook/models"
	"wanderbook/services/promo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) Evaluate(ctx context.Context, code string, unitPrice float64, quantity int) (*models.PromoResult, error) {
	args := m.Called(ctx, code, unitPrice, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoResult), args.Error(1)
}

func newPromoRouter(evaluator promo.Evaluator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPromoHandler(evaluator, zap.NewNop())
	r := gin.New()
	r.POST("/api/promo/validate", h.ValidatePromoHandler)
	return r
}

func TestValidatePromoHandler_Success(t *testing.T) {
	evaluator := &MockEvaluator{}
	router := newPromoRouter(evaluator)

	evaluator.On("Evaluate", mock.Anything, "SAVE10", 1000.0, 2).
		Return(&models.PromoResult{Code: "SAVE10", Type: models.PromoTypePercentage, Value: 10, Discount: 200}, nil)

	body, _ := json.Marshal(gin.H{"code": "SAVE10", "experiencePrice": 1000, "numberOfPeople": 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/promo/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Data    models.PromoResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Promo code applied successfully", resp.Message)
	assert.Equal(t, 200.0, resp.Data.Discount)
}

func TestValidatePromoHandler_MissingCode(t *testing.T) {
	evaluator := &MockEvaluator{}
	router := newPromoRouter(evaluator)

	body, _ := json.Marshal(gin.H{"experiencePrice": 1000, "numberOfPeople": 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/promo/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Promo code is required")
	evaluator.AssertNotCalled(t, "Evaluate")
}

func TestValidatePromoHandler_UnknownCode(t *testing.T) {
	evaluator := &MockEvaluator{}
	router := newPromoRouter(evaluator)

	evaluator.On("Evaluate", mock.Anything, "NOPE", 1000.0, 2).
		Return(nil, promo.ErrNotFound)

	body, _ := json.Marshal(gin.H{"code": "NOPE", "experiencePrice": 1000, "numberOfPeople": 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/promo/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired promo code")
}
