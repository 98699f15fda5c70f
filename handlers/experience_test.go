package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	experienceRepo "wanderbook/database/repository/experience"
	"wanderbook/models"
	"wanderbook/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, filter experienceRepo.ListFilter) ([]models.Experience, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func newExperienceRouter(service catalog.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExperienceHandler(service, zap.NewNop())
	r := gin.New()
	r.GET("/api/experiences", h.ListExperiencesHandler)
	r.GET("/api/experiences/:id", h.GetExperienceHandler)
	return r
}

func TestListExperiencesHandler_ReturnsCatalog(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	listing := []models.Experience{
		{ID: "exp-1", Title: "Sunrise Kayaking", Category: "water"},
		{ID: "exp-2", Title: "Street Food Walk", Category: "food"},
	}
	service.On("List", mock.Anything, experienceRepo.ListFilter{}).Return(listing, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Count   int                 `json:"count"`
		Data    []models.Experience `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
}

func TestListExperiencesHandler_ForwardsFilters(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	service.On("List", mock.Anything, experienceRepo.ListFilter{Category: "water", Search: "kayak"}).
		Return([]models.Experience{{ID: "exp-1", Title: "Sunrise Kayaking"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences?category=water&search=kayak", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestListExperiencesHandler_EmptyResultStillSucceeds(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	service.On("List", mock.Anything, mock.Anything).Return([]models.Experience{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences?search=nomatch", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestListExperiencesHandler_RepoFailure(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	service.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching experiences")
}

func TestGetExperienceHandler_Found(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	exp := &models.Experience{ID: "exp-1", Title: "Sunrise Kayaking", Price: 1200}
	service.On("GetByID", mock.Anything, "exp-1").Return(exp, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences/exp-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunrise Kayaking")
}

func TestGetExperienceHandler_NotFound(t *testing.T) {
	service := &MockCatalogService{}
	router := newExperienceRouter(service)

	service.On("GetByID", mock.Anything, "exp-missing").Return(nil, catalog.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/experiences/exp-missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Experience not found")
}
