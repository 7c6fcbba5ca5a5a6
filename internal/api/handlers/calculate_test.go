package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helalifaker/Project-2052-sub001/internal/api/models"
	"github.com/helalifaker/Project-2052-sub001/internal/config"
	"github.com/helalifaker/Project-2052-sub001/internal/engine"
	"github.com/helalifaker/Project-2052-sub001/internal/worker"
)

func newRouter(timeout time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalculateHandler(timeout)
	r := gin.New()
	r.POST("/api/v1/calculate", h.Calculate)
	r.POST("/api/v1/sensitivity", h.Sensitivity)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculate_Success(t *testing.T) {
	r := newRouter(worker.DefaultTimeout)

	w := postJSON(t, r, "/api/v1/calculate", models.CalculateRequest{
		Input: config.Default("api").Input,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp worker.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Output)
	assert.Len(t, resp.Output.Periods, 30)
	assert.True(t, resp.Output.Validation.AllPeriodsBalanced)
}

func TestCalculate_MalformedJSON(t *testing.T) {
	r := newRouter(worker.DefaultTimeout)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestCalculate_InvalidInput(t *testing.T) {
	r := newRouter(worker.DefaultTimeout)

	in := config.Default("api").Input
	in.ContractYears = 0
	w := postJSON(t, r, "/api/v1/calculate", models.CalculateRequest{Input: in})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CALCULATION_ERROR", resp.Code)
}

func TestCalculate_Timeout(t *testing.T) {
	r := newRouter(time.Nanosecond)

	w := postJSON(t, r, "/api/v1/calculate", models.CalculateRequest{
		Input: config.Default("api").Input,
	})

	require.Equal(t, http.StatusGatewayTimeout, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TIMEOUT", resp.Code)
}

func TestSensitivity_Success(t *testing.T) {
	r := newRouter(worker.DefaultTimeout)

	w := postJSON(t, r, "/api/v1/sensitivity", models.SensitivityRequest{
		Input:     config.Default("api").Input,
		Variables: []engine.Variable{engine.VarTuitionFee, engine.VarZakatRate},
		Metric:    engine.MetricTotalNetIncome,
		Range:     decimal.RequireFromString("0.10"),
		Points:    3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, engine.VarTuitionFee, resp.Results[0].Variable)
}

func TestSensitivity_BadSpec(t *testing.T) {
	r := newRouter(worker.DefaultTimeout)

	w := postJSON(t, r, "/api/v1/sensitivity", models.SensitivityRequest{
		Input:     config.Default("api").Input,
		Variables: []engine.Variable{engine.VarTuitionFee},
		Metric:    engine.MetricTotalNetIncome,
		Range:     decimal.RequireFromString("0.10"),
		Points:    1,
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}
