package bsgs

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrConfiguration is returned when the solver options are unusable.
	ErrConfiguration = errors.New("bsgs: invalid configuration")
	// ErrInvalidField is returned when the group is not defined over a prime field.
	ErrInvalidField = errors.New("bsgs: field characteristic is not prime")
	// ErrAllocation is returned when a record buffer cannot be allocated.
	ErrAllocation = errors.New("bsgs: record buffer allocation failed")
	// ErrNoCollision is returned when no candidate verifies against X·k = Y.
	ErrNoCollision = errors.New("bsgs: no verifying collision found")
	// ErrRecordOverflow is returned when a value does not fit its record field.
	ErrRecordOverflow = errors.New("bsgs: value exceeds record field width")
)

// ConfigurationError reports the rejected worker count.
type ConfigurationError struct {
	Workers int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bsgs: at least 2 workers required, got %d", e.Workers)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvalidFieldError carries the characteristic that failed the primality test.
type InvalidFieldError struct {
	Characteristic *big.Int
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("bsgs: characteristic %s is not prime", e.Characteristic)
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidField }

// AllocationError reports the requested buffer size. Bytes is -1 when the size
// itself could not be represented.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AllocationError struct {
	Bytes int
	cause error
}

func (e *AllocationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("bsgs: allocate %d bytes: %v", e.Bytes, e.cause)
	}
	return fmt.Sprintf("bsgs: allocate %d bytes", e.Bytes)
}

func (e *AllocationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAllocation}
	}
	return []error{ErrAllocation, e.cause}
}

// NoCollisionError reports the search bound used and how many candidates were
// rejected by verification.
type NoCollisionError struct {
	Bound      int
	Candidates int
}

func (e *NoCollisionError) Error() string {
	return fmt.Sprintf("bsgs: no verifying collision with n=%d (%d candidates rejected)", e.Bound, e.Candidates)
}

func (e *NoCollisionError) Unwrap() error { return ErrNoCollision }
