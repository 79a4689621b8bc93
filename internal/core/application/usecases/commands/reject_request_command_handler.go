package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// RejectRequestCommandHandler handles the business logic for declining a
// pending request or return. The reason is stamped on the record and no
// stock moves.
type RejectRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	auditLog   ports.AuditLog
}

// NewRejectRequestCommandHandler creates a handler for rejection operations.
func NewRejectRequestCommandHandler(uowFactory RequestUoWFactory, auditLog ports.AuditLog) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the rejection command.
func (h *RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
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
	if err = pending.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, pending, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.ManagerID(),
		Action:     ActionRejectRequest,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   pending.Quantity(),
	})

	return nil
}
