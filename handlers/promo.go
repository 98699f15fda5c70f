package handlers

import (
	"errors"
	"net/http"

	"wanderbook/services/promo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PromoHandler serves the standalone promo validation endpoint.
type PromoHandler struct {
	Evaluator promo.Evaluator
	Logger    *zap.Logger
}

func NewPromoHandler(evaluator promo.Evaluator, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{Evaluator: evaluator, Logger: logger}
}

// ValidatePromoHandler handles POST /api/promo/validate.
func (h *PromoHandler) ValidatePromoHandler(c *gin.Context) {
	var input struct {
		Code            string  `json:"code"`
		ExperiencePrice float64 `json:"experiencePrice"`
		NumberOfPeople  int     `json:"numberOfPeople"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Promo code is required",
		})
		return
	}

	result, err := h.Evaluator.Evaluate(c.Request.Context(), input.Code, input.ExperiencePrice, input.NumberOfPeople)
	if err != nil {
		if errors.Is(err, promo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Invalid or expired promo code",
			})
			return
		}
		h.Logger.Error("failed to validate promo code", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error validating promo code",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Promo code applied successfully",
		"data":    result,
	})
}
