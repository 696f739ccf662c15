package main

import "github.com/pkg/errors"

var (
	// ErrEmptySample is returned by every stage that receives no observations.
	ErrEmptySample = errors.New("sample is empty")
	// ErrConstantSample is returned when a transform would divide by a zero
	// range or a zero standard deviation.
	ErrConstantSample = errors.New("sample is constant")
	// ErrNonFiniteSample is returned for NaN or infinite values, and for
	// finite values whose spread overflows float64.
	ErrNonFiniteSample = errors.New("sample is not finite")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
