package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in cents.
// It is an immutable value object used for the order price breakdown.
// Unlike other kernel value objects the zero value (0 cents) is valid,
// so Money carries no constructor guard.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two Money values.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns a human-readable decimal representation, e.g. "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
