package cooling

import "errors"

// MinTemperature is the hard positive floor applied by every schedule.
// It keeps exp(-delta/T) well-defined when a schedule has fully cooled.
const MinTemperature = 1e-12

var (
	// ErrInitialTemperature indicates T0 <= 0 (or NaN).
	ErrInitialTemperature = errors.New("cooling: initial temperature T0 must be > 0")
	// ErrAlphaRange indicates a geometric factor outside (0, 1).
	ErrAlphaRange = errors.New("cooling: geometric alpha must be in (0, 1)")
	// ErrBetaRange indicates a non-positive linear decrement.
	ErrBetaRange = errors.New("cooling: linear beta must be > 0")
	// ErrBetaExceedsT0 indicates beta >= T0, which would collapse the
	// temperature to the floor after a single step.
	ErrBetaExceedsT0 = errors.New("cooling: linear schedule requires T0 > beta")
	// ErrGammaRange indicates a non-positive Cauchy decay rate.
	ErrGammaRange = errors.New("cooling: cauchy gamma must be > 0")
)

// Schedule produces a monotonically non-increasing temperature sequence.
//
// Implementations hold mutable state (current temperature, step counter)
// and are not safe for concurrent use.
type Schedule interface {
	// CurrentTemperature returns the temperature at the current step.
	// Always > 0 (clamped to MinTemperature). Pure read.
	CurrentTemperature() float64

	// NextStep advances the schedule exactly one step.
	NextStep()

	// Reset restores the initial temperature and step 0.
	Reset()
}
