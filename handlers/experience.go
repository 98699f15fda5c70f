package handlers

import (
	"errors"
	"net/http"

	experienceRepo "wanderbook/database/repository/experience"
	"wanderbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExperienceHandler serves catalog read endpoints.
type ExperienceHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewExperienceHandler(service catalog.CatalogService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{Service: service, Logger: logger}
}

// ListExperiencesHandler handles GET /api/experiences?category=&search=.
func (h *ExperienceHandler) ListExperiencesHandler(c *gin.Context) {
	filter := experienceRepo.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	experiences, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("failed to list experiences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching experiences",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(experiences),
		"data":    experiences,
	})
}

// GetExperienceHandler handles GET /api/experiences/:id.
func (h *ExperienceHandler) GetExperienceHandler(c *gin.Context) {
	id := c.Param("id")

	exp, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Experience not found",
			})
			return
		}
		h.Logger.Error("failed to fetch experience", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching experience details",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    exp,
	})
}
