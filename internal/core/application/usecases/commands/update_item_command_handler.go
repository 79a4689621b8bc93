package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// UpdateItemCommandHandler handles the business logic for editing the catalog
// fields of an item.
type UpdateItemCommandHandler struct {
	uowFactory StockUoWFactory
	auditLog   ports.AuditLog
}

// NewUpdateItemCommandHandler creates a handler for catalog edits.
func NewUpdateItemCommandHandler(uowFactory StockUoWFactory, auditLog ports.AuditLog) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the catalog edit command. The item must already exist;
// editing it never touches the central quantity.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	existing, err := uow.StockRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = existing.UpdateDetails(cmd.Name(), cmd.Category(), cmd.Unit(), cmd.ReorderLevel()); err != nil {
		return err
	}

	if err = uow.StockRepository().Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionUpdateItem,
		SubjectRef: "item/" + cmd.ItemID().String(),
	})

	return nil
}
