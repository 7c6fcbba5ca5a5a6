// Package models defines the request and response shapes of the HTTP
// boundary. Monetary values cross this boundary as decimal strings.
package models

import (
	"github.com/shopspring/decimal"

	"github.com/helalifaker/Project-2052-sub001/internal/engine"
)

// CalculateRequest wraps one engine input.
type CalculateRequest struct {
	Input engine.Input `json:"input"`
}

// SensitivityRequest runs ranked sweeps over several variables.
type SensitivityRequest struct {
	Input     engine.Input      `json:"input"`
	Variables []engine.Variable `json:"variables"`
	Metric    engine.Metric     `json:"metric"`
	Range     decimal.Decimal   `json:"range"`
	Points    int               `json:"points"`
}

// SensitivityResponse carries the ranked sweep results.
type SensitivityResponse struct {
	Success           bool                 `json:"success"`
	Results           []engine.SweepResult `json:"results,omitempty"`
	Error             string               `json:"error,omitempty"`
	CalculationTimeMs int64                `json:"calculationTimeMs"`
}

// ErrorResponse is the failure shape shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}
