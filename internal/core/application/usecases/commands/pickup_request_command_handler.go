package commands

import (
	"context"
	"fmt"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// PickupRequestCommandHandler handles the business logic for a courier
// collecting an approved outgoing request. Stock was already reserved at
// approval, so the pickup only transitions the record and stamps the courier.
type PickupRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	auditLog   ports.AuditLog
}

// NewPickupRequestCommandHandler creates a handler for outgoing pickups.
func NewPickupRequestCommandHandler(uowFactory RequestUoWFactory, auditLog ports.AuditLog) PickupRequestCommandHandler {
	return PickupRequestCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the outgoing pickup command.
func (h *PickupRequestCommandHandler) Handle(ctx context.Context, cmd PickupRequestCommand) error {
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

	// Returns go through the return-pickup flow, which also releases custody.
	if approved.Kind() != request.KindRequest {
		return fmt.Errorf("record %s is a return: %w", cmd.RequestID(), request.ErrInvalidTransition)
	}

	previous := approved.Status()
	if err = approved.Pickup(cmd.CourierID()); err != nil {
		return err
	}

	if err = requestRepo.Transition(ctx, approved, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.CourierID(),
		Action:     ActionPickupRequest,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   approved.Quantity(),
	})

	return nil
}
