package request

import (
	"errors"
	"fmt"

	"inventory/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status transition is requested from a
// status that does not permit it. Callers should treat it as an expected
// workflow failure: refresh the request and retry, rather than abort.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a request or return.
// It implements a state machine with defined transitions per Kind to ensure
// every record follows the correct business workflow.
//
// State transitions for KindRequest (inventory -> college):
//
//	Pending ──approve──> ApprovedPickup ──pickup──> InTransitToCollege
//	   │                                                  │
//	 reject                                            deliver
//	   ▼                                                  ▼
//	Rejected                                     DeliveredToCollege
//
// State transitions for KindReturn (college -> inventory):
//
//	Pending ──approve──> ApprovedPickupReturn ──pickup──> InTransitToInventory
//	   │                                                        │
//	 reject                                                  deliver
//	   ▼                                                        ▼
//	Rejected                                          ReceivedAtInventory
//
// Status is a value object that validates state transitions and provides the
// canonical string representations used for display and interchange.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every newly created request or return.
	// Records in this status are waiting for a manager decision.
	Pending

	// ApprovedPickup indicates an outgoing request was approved and central
	// stock was reserved. The record is waiting for a courier pickup.
	ApprovedPickup

	// InTransitToCollege indicates a courier has picked up the items and is
	// delivering them to the requesting college.
	InTransitToCollege

	// DeliveredToCollege indicates the items reached the college and custody
	// was transferred. This is a terminal status.
	DeliveredToCollege

	// ApprovedPickupReturn indicates a return was approved and is waiting for
	// a courier pickup at the college.
	ApprovedPickupReturn

	// InTransitToInventory indicates a courier is carrying returned items back
	// to the central inventory.
	InTransitToInventory

	// ReceivedAtInventory indicates returned items were received centrally and
	// stock was restored. This is a terminal status.
	ReceivedAtInventory

	// Rejected indicates a manager declined the request or return, with a
	// recorded reason. This is a terminal status.
	Rejected
)

// getStatusStrings returns the canonical display string per status.
// The vocabulary is fixed for compatibility with downstream consumers and
// must not be altered.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		Pending:              "Pending",
		ApprovedPickup:       "Approved - Ready for Pickup",
		InTransitToCollege:   "In Transit to College",
		DeliveredToCollege:   "Delivered to College",
		ApprovedPickupReturn: "Approved - Ready for Pickup (Return)",
		InTransitToInventory: "In Transit to Inventory",
		ReceivedAtInventory:  "Received at Inventory",
		Rejected:             "Rejected",
	}
}

// StatusFromString parses the canonical display string form of a status.
// Accepts exactly the strings produced by String for valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, StatusUnknown)
	return valid
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical display name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == DeliveredToCollege || s == ReceivedAtInventory || s == Rejected
}

// Approve transitions the status out of Pending to the kind-appropriate
// "ready for pickup" status.
//
// Valid transitions:
//   - Pending -> ApprovedPickup (KindRequest)
//   - Pending -> ApprovedPickupReturn (KindReturn)
//
// Returns ErrInvalidTransition (wrapped) if the current status is not Pending,
// or a validation error if the kind is invalid.
func (s Status) Approve(kind Kind) (Status, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot approve from %q", ErrInvalidTransition, s.String())
	}

	if kind == KindReturn {
		return ApprovedPickupReturn, nil
	}
	return ApprovedPickup, nil
}

// Reject transitions the status from Pending to Rejected.
// Returns ErrInvalidTransition (wrapped) if the current status is not Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot reject from %q", ErrInvalidTransition, s.String())
	}
	return Rejected, nil
}

// Pickup transitions the status to the kind-appropriate in-transit status.
//
// Valid transitions:
//   - ApprovedPickup -> InTransitToCollege (KindRequest)
//   - ApprovedPickupReturn -> InTransitToInventory (KindReturn)
func (s Status) Pickup(kind Kind) (Status, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	switch {
	case kind == KindRequest && s == ApprovedPickup:
		return InTransitToCollege, nil
	case kind == KindReturn && s == ApprovedPickupReturn:
		return InTransitToInventory, nil
	default:
		return 0, fmt.Errorf("%w: cannot pick up %s from %q", ErrInvalidTransition, kind, s.String())
	}
}

// Deliver transitions the status to the kind-appropriate terminal status.
//
// Valid transitions:
//   - InTransitToCollege -> DeliveredToCollege (KindRequest)
//   - InTransitToInventory -> ReceivedAtInventory (KindReturn)
func (s Status) Deliver(kind Kind) (Status, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	switch {
	case kind == KindRequest && s == InTransitToCollege:
		return DeliveredToCollege, nil
	case kind == KindReturn && s == InTransitToInventory:
		return ReceivedAtInventory, nil
	default:
		return 0, fmt.Errorf("%w: cannot deliver %s from %q", ErrInvalidTransition, kind, s.String())
	}
}
