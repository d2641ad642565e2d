package nds

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for degree values outside [-180, 180].
	ErrDomain = errors.New("degree value out of range")

	ErrInvalidLevel     = errors.New("invalid tile level")
	ErrUnknownDirection = errors.New("unknown direction")
)

// DomainError carries the offending degree value.
// It unwraps to ErrDomain.
type DomainError struct {
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %v not in [%v, %v]", ErrDomain, e.Value, MinDegrees, MaxDegrees)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
