package commands

import (
	"context"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// ApproveRequestCommandHandler handles the business logic for approving a
// pending request or return.
//
// For an outgoing request the handler reserves central stock and moves the
// record to "ready for pickup" inside one transaction: if the conditional
// stock decrement refuses (insufficient units) or a concurrent writer already
// transitioned the record, everything rolls back and the record stays as it
// was. Returns reserve nothing; stock only moves when the returned items are
// received back at the warehouse.
type ApproveRequestCommandHandler struct {
	uowFactory RequestStockUoWFactory
	auditLog   ports.AuditLog
}

// NewApproveRequestCommandHandler creates a handler for approval operations.
func NewApproveRequestCommandHandler(
	uowFactory RequestStockUoWFactory,
	auditLog ports.AuditLog,
) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the approval command.
func (h *ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
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
	pending, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	previous := pending.Status()
	if err = pending.Approve(); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, pending, previous); err != nil {
		return err
	}

	if pending.Kind() == request.KindRequest {
		err = uow.StockRepository().ReserveCentralStock(ctx, pending.ItemID(), pending.Quantity())
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionApproveRequest,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   pending.Quantity(),
	})

	return nil
}
