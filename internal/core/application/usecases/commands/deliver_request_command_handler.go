package commands

import (
	"context"
	"fmt"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// DeliverRequestCommandHandler handles the business logic for completing an
// outgoing delivery. The status transition and the custody increment for the
// receiving college commit as one transaction, so the delivered units are
// never in custody limbo.
type DeliverRequestCommandHandler struct {
	uowFactory RequestCustodyUoWFactory
	auditLog   ports.AuditLog
}

// NewDeliverRequestCommandHandler creates a handler for outgoing deliveries.
func NewDeliverRequestCommandHandler(
	uowFactory RequestCustodyUoWFactory,
	auditLog ports.AuditLog,
) DeliverRequestCommandHandler {
	return DeliverRequestCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the outgoing delivery command.
func (h *DeliverRequestCommandHandler) Handle(ctx context.Context, cmd DeliverRequestCommand) error {
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
	inTransit, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	// Returns complete through the return-delivery flow, which restocks the
	// central warehouse instead of raising custody.
	if inTransit.Kind() != request.KindRequest {
		return fmt.Errorf("record %s is a return: %w", cmd.RequestID(), request.ErrInvalidTransition)
	}

	previous := inTransit.Status()
	if err = inTransit.Deliver(); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, inTransit, previous); err != nil {
		return err
	}

	err = uow.CustodyRepository().Adjust(ctx, inTransit.CollegeID(), inTransit.ItemID(), inTransit.Quantity())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.CourierID(),
		Action:     ActionDeliverRequest,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   inTransit.Quantity(),
	})

	return nil
}
