package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// RemoveItemCommandHandler handles the business logic for removing an item
// from the central catalog.
type RemoveItemCommandHandler struct {
	uowFactory StockUoWFactory
	auditLog   ports.AuditLog
}

// NewRemoveItemCommandHandler creates a handler for catalog removals.
func NewRemoveItemCommandHandler(uowFactory StockUoWFactory, auditLog ports.AuditLog) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the catalog removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	if err := uow.StockRepository().Remove(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionRemoveItem,
		SubjectRef: "item/" + cmd.ItemID().String(),
	})

	return nil
}
