package request

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest. This ensures all requests
	// are properly validated.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")
)

// Request is the aggregate root for one request/return record. It owns the
// record's lifecycle from creation (Pending) to a terminal status and enforces
// that every mutation goes through a defined transition.
//
// Request follows these invariants:
//   - Must have valid identifiers for itself, the college, and the item
//   - Quantity must be positive
//   - Kind is fixed at creation and never changes
//   - Status transitions follow the state machine defined by Status
//   - A rejection reason is present exactly when the status is Rejected
//   - A courier is stamped when the record enters an in-transit status
//
// The struct uses private fields so presentation and adapter code cannot edit
// fields directly; persistence reconstructs aggregates via RestoreRequest.
type Request struct {
	id              kernel.UUID
	collegeID       kernel.UUID
	itemID          kernel.UUID
	quantity        int
	purpose         string
	kind            Kind
	status          Status
	rejectionReason string
	courierID       *kernel.UUID
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a new Request in Pending status with the current timestamp.
//
// Parameters:
//   - id: unique identifier for the record
//   - collegeID: the requesting (or returning) college
//   - itemID: the inventory item concerned
//   - quantity: number of units (must be positive)
//   - purpose: free-form notes supplied by the college
//   - kind: KindRequest or KindReturn
//
// No stock is reserved at creation time; reservation happens at approval.
func NewRequest(
	id kernel.UUID,
	collegeID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	purpose string,
	kind Kind,
) (*Request, error) {
	r := &Request{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCollegeID(collegeID),
		r.setItemID(itemID),
		r.setQuantity(quantity),
		r.setKind(kind),
	); err != nil {
		return nil, err
	}
	r.purpose = purpose

	return r, nil
}

// RestoreRequest reconstructs a Request aggregate from persistent storage.
// Unlike NewRequest, it accepts any valid status along with the rejection
// reason, courier assignment, and original creation timestamp, so the restored
// aggregate behaves identically to one that reached that state through domain
// operations.
func RestoreRequest(
	id kernel.UUID,
	collegeID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	purpose string,
	kind Kind,
	status Status,
	rejectionReason string,
	courierID *kernel.UUID,
	createdAt time.Time,
) (*Request, error) {
	r := &Request{
		rejectionReason: rejectionReason,
		purpose:         purpose,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCollegeID(collegeID),
		r.setItemID(itemID),
		r.setQuantity(quantity),
		r.setKind(kind),
		r.setStatus(status),
		r.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request instance was properly constructed.
// Returns ErrRequestIsNotConstructed for zero-value or directly instantiated
// structs. Called by repositories before persisting aggregates.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CollegeID returns the identifier of the requesting college.
func (r *Request) CollegeID() kernel.UUID {
	return r.collegeID
}

// ItemID returns the identifier of the inventory item.
func (r *Request) ItemID() kernel.UUID {
	return r.itemID
}

// Quantity returns the number of units requested or returned.
func (r *Request) Quantity() int {
	return r.quantity
}

// Purpose returns the free-form notes supplied at creation.
func (r *Request) Purpose() string {
	return r.purpose
}

// Kind returns the flow discriminator (KindRequest or KindReturn).
func (r *Request) Kind() Kind {
	return r.kind
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// RejectionReason returns the manager's reason for rejection.
// Empty unless the record is Rejected.
func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

// Courier returns the assigned courier's ID, or nil before pickup.
func (r *Request) Courier() *kernel.UUID {
	return r.courierID
}

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Approve moves the record out of Pending to the kind-appropriate
// "ready for pickup" status.
//
// The caller (the lifecycle engine) is responsible for reserving central stock
// before approving an outgoing request; this method only performs the status
// transition. Returns ErrInvalidTransition (wrapped) if the record is not
// Pending.
func (r *Request) Approve() error {
	newStatus, err := r.status.Approve(r.kind)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject declines a Pending record with a mandatory reason.
//
// Returns a validation error if reason is empty, and ErrInvalidTransition
// (wrapped) if the record is not Pending.
func (r *Request) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.rejectionReason = reason
	return nil
}

// Pickup records a courier collecting the items and moves the record to the
// kind-appropriate in-transit status, stamping the courier.
//
// Returns a validation error if the courier ID is invalid, and
// ErrInvalidTransition (wrapped) if the record is not ready for pickup.
func (r *Request) Pickup(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Pickup(r.kind)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.courierID = &courierID
	return nil
}

// Deliver completes the courier leg and moves the record to its terminal
// status (DeliveredToCollege or ReceivedAtInventory).
//
// The caller is responsible for the matching custody or central stock
// adjustment; this method only performs the status transition. Returns
// ErrInvalidTransition (wrapped) if the record is not in transit.
func (r *Request) Deliver() error {
	newStatus, err := r.status.Deliver(r.kind)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCollegeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("collegeID: %w", err)
	}
	r.collegeID = id
	return nil
}

func (r *Request) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("itemID: %w", err)
	}
	r.itemID = id
	return nil
}

func (r *Request) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Request) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Request) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return fmt.Errorf("courierID: %w", err)
	}
	r.courierID = courierID
	return nil
}
