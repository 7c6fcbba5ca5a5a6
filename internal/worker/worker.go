// Package worker runs a projection off the calling goroutine so a caller can
// enforce a wall-clock budget. The compute function itself stays synchronous
// and side-effect-free; the engine has no cancellation checkpoints, so a
// timed-out run is simply abandoned.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/helalifaker/Project-2052-sub001/internal/engine"
)

// ErrTimeout distinguishes a blown wall-clock budget from a computation
// error.
var ErrTimeout = errors.New("worker: calculation timed out")

// DefaultTimeout is the standard wall-clock budget for a full run.
const DefaultTimeout = 25 * time.Second

// Request is one unit of work.
type Request struct {
	ID    uuid.UUID    `json:"id"`
	Input engine.Input `json:"input"`
}

// NewRequest wraps an engine input with a fresh run ID.
func NewRequest(in engine.Input) Request {
	return Request{ID: uuid.New(), Input: in}
}

// Response mirrors the isolated-execution protocol: success with output and
// timing, or a failure reason.
type Response struct {
	ID                uuid.UUID      `json:"id"`
	Success           bool           `json:"success"`
	Output            *engine.Output `json:"output,omitempty"`
	Error             string         `json:"error,omitempty"`
	CalculationTimeMs int64          `json:"calculationTimeMs"`
}

// Execute runs the request on its own goroutine and races it against the
// timeout and the context. On timeout the goroutine is abandoned; it holds
// no shared state, so nothing is corrupted.
func Execute(ctx context.Context, req Request, timeout time.Duration) (Response, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	type result struct {
		out *engine.Output
		err error
	}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		out, err := engine.Run(req.Input)
		done <- result{out: out, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		resp := Response{
			ID:                req.ID,
			CalculationTimeMs: time.Since(start).Milliseconds(),
		}
		if r.err != nil {
			resp.Error = r.err.Error()
			return resp, r.err
		}
		resp.Success = true
		resp.Output = r.out
		return resp, nil
	case <-timer.C:
		return Response{
			ID:                req.ID,
			Error:             ErrTimeout.Error(),
			CalculationTimeMs: time.Since(start).Milliseconds(),
		}, ErrTimeout
	case <-ctx.Done():
		return Response{
			ID:                req.ID,
			Error:             ctx.Err().Error(),
			CalculationTimeMs: time.Since(start).Milliseconds(),
		}, ctx.Err()
	}
}
