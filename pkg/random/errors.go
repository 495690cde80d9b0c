package random

import "errors"

var (
	// ErrSimulatedFailure is returned when the failure policy asks a generation to fail.
	ErrSimulatedFailure = errors.New("Random error occurred (simulated)")
	// ErrInvalidRange indicates the lower bound is greater than the upper bound.
	ErrInvalidRange = errors.New("min cannot be greater than max")
	// ErrUnknownPolicy is returned by ParsePolicy for names it does not know.
	ErrUnknownPolicy = errors.New("unknown failure policy")
)
