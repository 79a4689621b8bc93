package commands

import (
	"context"

	"inventory/internal/core/domain/model/college"
)

// RegisterCollegeCommandHandler handles the business logic for registering a
// new college.
type RegisterCollegeCommandHandler struct {
	uowFactory CollegeUoWFactory
}

// NewRegisterCollegeCommandHandler creates a handler for college registration.
func NewRegisterCollegeCommandHandler(uowFactory CollegeUoWFactory) RegisterCollegeCommandHandler {
	return RegisterCollegeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the college registration command.
func (h *RegisterCollegeCommandHandler) Handle(ctx context.Context, cmd RegisterCollegeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCollege, err := college.NewCollege(cmd.CollegeID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.CollegeRepository().Add(ctx, newCollege); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
