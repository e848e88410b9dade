package runner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Availability represents a runner's readiness to take delivery jobs.
// It is a global per-runner flag with no notion of queued next jobs:
//
//	offline <──> online ──> busy
//	                ^         │
//	                └─────────┘
//	        (busy clears when the claimed order reaches a terminal status)
//
// A busy runner cannot go offline directly; the claimed order must reach
// delivered or cancelled first.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Offline means the runner is not accepting jobs.
	Offline

	// Online means the runner is free and may claim a pending order.
	Online

	// Busy means the runner is carrying a claimed order.
	Busy
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Offline:             "offline",
		Online:              "online",
		Busy:                "busy",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Offline: "offline",
		Online:  "online",
		Busy:    "busy",
	}
}

// AvailabilityFromString parses an availability from its wire representation.
func AvailabilityFromString(s string) (Availability, error) {
	for a, str := range getValidAvailabilityStrings() {
		if str == s {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid availability", s))
}

// Validate checks if the Availability value is valid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the wire representation of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}
