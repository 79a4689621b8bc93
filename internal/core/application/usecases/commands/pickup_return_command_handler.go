package commands

import (
	"context"
	"fmt"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// PickupReturnCommandHandler handles the business logic for a courier
// collecting an approved return from the college. The custody balance is
// released in the same transaction as the status transition: once the items
// leave the college they no longer count toward its custody, and a college
// holding fewer units than the return claims causes the whole pickup to
// roll back.
type PickupReturnCommandHandler struct {
	uowFactory RequestCustodyUoWFactory
	auditLog   ports.AuditLog
}

// NewPickupReturnCommandHandler creates a handler for return pickups.
func NewPickupReturnCommandHandler(
	uowFactory RequestCustodyUoWFactory,
	auditLog ports.AuditLog,
) PickupReturnCommandHandler {
	return PickupReturnCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the return pickup command.
func (h *PickupReturnCommandHandler) Handle(ctx context.Context, cmd PickupReturnCommand) error {
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

	requestRepo := uow.RequestRepository()
	approved, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	// Outgoing requests go through the request-pickup flow, which leaves
	// custody untouched.
	if approved.Kind() != request.KindReturn {
		return fmt.Errorf("record %s is not a return: %w", cmd.RequestID(), request.ErrInvalidTransition)
	}

	previous := approved.Status()
	if err = approved.Pickup(cmd.CourierID()); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, approved, previous); err != nil {
		return err
	}

	err = uow.CustodyRepository().Release(ctx, approved.CollegeID(), approved.ItemID(), approved.Quantity())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.CourierID(),
		Action:     ActionPickupReturn,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   approved.Quantity(),
	})

	return nil
}
