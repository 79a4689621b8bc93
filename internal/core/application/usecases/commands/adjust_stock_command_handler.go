package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// AdjustStockCommandHandler handles manual corrections to the central stock
// ledger. Negative corrections go through the conditional decrement so the
// warehouse quantity can never be driven below zero.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
	auditLog   ports.AuditLog
}

// NewAdjustStockCommandHandler creates a handler for manual stock corrections.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory, auditLog ports.AuditLog) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the stock correction command.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	stockRepo := uow.StockRepository()
	var err error
	if delta := cmd.Delta(); delta > 0 {
		err = stockRepo.AdjustCentralStock(ctx, cmd.ItemID(), delta)
	} else {
		err = stockRepo.ReserveCentralStock(ctx, cmd.ItemID(), -delta)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionAdjustStock,
		SubjectRef: "item/" + cmd.ItemID().String(),
		Quantity:   cmd.Delta(),
	})

	return nil
}
