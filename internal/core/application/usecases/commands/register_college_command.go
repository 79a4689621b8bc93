package commands

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var (
	ErrRegisterCollegeCommandIsNotConstructed = errors.New(
		"RegisterCollegeCommand must be created via NewRegisterCollegeCommand constructor",
	)
	ErrCollegeNameIsRequired = errors.New("name is required")
)

// RegisterCollegeCommand represents registering a new college that can submit
// requests and hold custody balances.
type RegisterCollegeCommand struct { //nolint:recvcheck //using for validation
	collegeID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRegisterCollegeCommand creates a command to register a new college.
func NewRegisterCollegeCommand(collegeID kernel.UUID, name string) (RegisterCollegeCommand, error) {
	cmd := RegisterCollegeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCollegeID(collegeID),
		cmd.setName(name),
	); err != nil {
		return RegisterCollegeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCollegeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCollegeCommandIsNotConstructed)
}

// CollegeID returns the unique identifier for the new college.
func (c RegisterCollegeCommand) CollegeID() kernel.UUID {
	return c.collegeID
}

// Name returns the college's display name.
func (c RegisterCollegeCommand) Name() string {
	return c.name
}

func (c *RegisterCollegeCommand) setCollegeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.collegeID = id
	return nil
}

func (c *RegisterCollegeCommand) setName(name string) error {
	if name == "" {
		return ErrCollegeNameIsRequired
	}

	c.name = name
	return nil
}
