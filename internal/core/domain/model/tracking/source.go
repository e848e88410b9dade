package tracking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Source identifies how a position sample was obtained.
type Source int

const (
	// SourceUnknown represents an invalid or undefined source.
	SourceUnknown Source = iota

	// GPS means the sample came from the device's satellite positioning.
	GPS

	// Network means the sample was derived from cell or wifi positioning.
	Network

	// Manual means the runner entered the position by hand.
	Manual
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown: "unknown",
		GPS:           "gps",
		Network:       "network",
		Manual:        "manual",
	}
}

func getValidSourceStrings() map[Source]string {
	//nolint:exhaustive // SourceUnknown is intentionally excluded as it's invalid
	return map[Source]string{
		GPS:     "gps",
		Network: "network",
		Manual:  "manual",
	}
}

// SourceFromString parses a source from its wire representation.
func SourceFromString(s string) (Source, error) {
	for src, str := range getValidSourceStrings() {
		if str == s {
			return src, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidErrorWithCause("source",
		fmt.Errorf("%q is not a valid location source", s))
}

// Validate checks if the Source value is valid.
func (s Source) Validate() error {
	if _, ok := getValidSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("source",
			fmt.Errorf("%d is not a valid location source", s))
	}
	return nil
}

// String returns the wire representation of the source.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}
