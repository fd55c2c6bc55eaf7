package model

import "errors"

// Validation errors for run inputs
var (
	// ErrSimulations indicates a non-positive trial count.
	ErrSimulations = errors.New("simulations must be > 0")

	// ErrNoise indicates a noise level outside [0.0, 1.0].
	ErrNoise = errors.New("noise out of range")
)
