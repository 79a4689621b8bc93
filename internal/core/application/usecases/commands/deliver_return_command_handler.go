package commands

import (
	"context"
	"fmt"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// DeliverReturnCommandHandler handles the business logic for receiving
// returned items back at the central warehouse. The terminal status
// transition and the central stock increment commit as one transaction.
type DeliverReturnCommandHandler struct {
	uowFactory RequestStockUoWFactory
	auditLog   ports.AuditLog
}

// NewDeliverReturnCommandHandler creates a handler for return deliveries.
func NewDeliverReturnCommandHandler(
	uowFactory RequestStockUoWFactory,
	auditLog ports.AuditLog,
) DeliverReturnCommandHandler {
	return DeliverReturnCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the return delivery command.
func (h *DeliverReturnCommandHandler) Handle(ctx context.Context, cmd DeliverReturnCommand) error {
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

	// Outgoing requests complete through the request-delivery flow, which
	// raises the college's custody instead of restocking.
	if inTransit.Kind() != request.KindReturn {
		return fmt.Errorf("record %s is not a return: %w", cmd.RequestID(), request.ErrInvalidTransition)
	}

	previous := inTransit.Status()
	if err = inTransit.Deliver(); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, inTransit, previous); err != nil {
		return err
	}

	err = uow.StockRepository().AdjustCentralStock(ctx, inTransit.ItemID(), inTransit.Quantity())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.CourierID(),
		Action:     ActionDeliverReturn,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   inTransit.Quantity(),
	})

	return nil
}
