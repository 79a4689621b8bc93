// Package college provides the College entity. Colleges originate requests
// and returns and hold per-item custody balances once deliveries complete.
package college

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when registering a college without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCollegeIsNotConstructed is returned when using an improperly initialized College.
	ErrCollegeIsNotConstructed = errors.New("College must be created via NewCollege")
)

// College identifies one requesting college. It owns zero or more custody
// balances, which are tracked separately in the stock ledger.
type College struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewCollege creates a new College with the given identity and display name.
func NewCollege(id kernel.UUID, name string) (*College, error) {
	c := &College{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCollege reconstructs a College from persistent storage.
func RestoreCollege(id kernel.UUID, name string) (*College, error) {
	return NewCollege(id, name)
}

// Validate ensures the College instance was properly constructed.
func (c *College) Validate() error {
	if c == nil {
		return ErrCollegeIsNotConstructed
	}
	return c.guard.Validate(ErrCollegeIsNotConstructed)
}

// IsEqual compares two colleges by their unique identifiers.
func (c *College) IsEqual(other *College) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the college's unique identifier.
func (c *College) ID() kernel.UUID {
	return c.id
}

// Name returns the college's display name.
func (c *College) Name() string {
	return c.name
}

func (c *College) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *College) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
