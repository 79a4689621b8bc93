package commands

import (
	"context"

	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/ports"
)

// AddItemCommandHandler handles the business logic for registering a new
// catalog item.
type AddItemCommandHandler struct {
	uowFactory StockUoWFactory
	auditLog   ports.AuditLog
}

// NewAddItemCommandHandler creates a handler for catalog additions.
func NewAddItemCommandHandler(uowFactory StockUoWFactory, auditLog ports.AuditLog) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the catalog addition command.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	newItem, err := item.NewItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Category(),
		cmd.Unit(),
		cmd.QuantityCentral(),
		cmd.ReorderLevel(),
	)
	if err != nil {
		return err
	}

	if err = uow.StockRepository().Add(ctx, newItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionAddItem,
		SubjectRef: "item/" + cmd.ItemID().String(),
		Quantity:   cmd.QuantityCentral(),
	})

	return nil
}
