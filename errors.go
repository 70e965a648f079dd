package erosion

import (
	"errors"
	"fmt"
)

// Configuration errors: detected before any computation begins.
var (
	// ErrUnknownModel indicates a model name other than rusle or usped.
	ErrUnknownModel = errors.New("erosion: unknown model (expecting rusle or usped)")
	// ErrNoElevation indicates a run without an elevation grid.
	ErrNoElevation = errors.New("erosion: elevation grid required")
	// ErrGridMismatch indicates a factor grid not aligned with the elevation grid.
	ErrGridMismatch = errors.New("erosion: factor grids must share the elevation grid's extent, resolution and alignment")
	// ErrRainDuration indicates an event-based R factor request with a non-positive storm duration.
	ErrRainDuration = errors.New("erosion: rainfall duration must be positive")
	// ErrExponent indicates a non-positive flow or slope exponent.
	ErrExponent = errors.New("erosion: flow and slope exponents must be positive")
)

// ComputationError wraps a failed pipeline step; the run is aborted but
// scratch layers are still cleaned up.
type ComputationError struct {
	Step string
	Err  error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("erosion: step %s failed: %v", e.Step, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

func stepErr(step string, err error) error {
	if err == nil {
		return nil
	}
	return &ComputationError{Step: step, Err: err}
}
