// Package handlers implements the HTTP calculation endpoints.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helalifaker/Project-2052-sub001/internal/api/models"
	"github.com/helalifaker/Project-2052-sub001/internal/engine"
	"github.com/helalifaker/Project-2052-sub001/internal/worker"
)

// CalculateHandler runs full projections with a wall-clock budget.
type CalculateHandler struct {
	Timeout time.Duration
}

// NewCalculateHandler creates a calculate handler with the given budget;
// zero means the worker default.
func NewCalculateHandler(timeout time.Duration) *CalculateHandler {
	return &CalculateHandler{Timeout: timeout}
}

// Calculate handles POST /api/v1/calculate.
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:  "INVALID_REQUEST",
			Error: err.Error(),
		})
		return
	}

	resp, err := worker.Execute(c.Request.Context(), worker.NewRequest(req.Input), h.Timeout)
	if err != nil {
		status := http.StatusUnprocessableEntity
		code := "CALCULATION_ERROR"
		if errors.Is(err, worker.ErrTimeout) {
			status = http.StatusGatewayTimeout
			code = "TIMEOUT"
		}
		c.JSON(status, models.ErrorResponse{
			Code:  code,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Sensitivity handles POST /api/v1/sensitivity.
func (h *CalculateHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:  "INVALID_REQUEST",
			Error: err.Error(),
		})
		return
	}

	start := time.Now()
	results, err := engine.SweepAll(req.Input, req.Variables, req.Metric, req.Range, req.Points)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.SensitivityResponse{
			Error:             err.Error(),
			CalculationTimeMs: time.Since(start).Milliseconds(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SensitivityResponse{
		Success:           true,
		Results:           results,
		CalculationTimeMs: time.Since(start).Milliseconds(),
	})
}
