package order

import (
	"fmt"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"
)

// Status represents the lifecycle state of a sale order.
// The composition engine only intercepts the confirmation transition;
// everything beyond confirmation belongs to the surrounding order system.
//
// State transitions:
//
//	Draft ──> Confirmed
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status: lines can be added, rescaled and
	// reconfigured freely.
	Draft

	// Confirmed indicates the order was confirmed. Each composite line's
	// actual composition has been frozen into a BOM reference.
	Confirmed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Draft and Confirmed; Unknown (0) and any other values
// are invalid. Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the order is not in Draft status
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}
