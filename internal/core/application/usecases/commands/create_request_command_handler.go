package commands

import (
	"context"

	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"
)

// CreateRequestCommandHandler handles the business logic for submitting a new
// request or return. The record starts in Pending status with no stock moved.
type CreateRequestCommandHandler struct {
	uowFactory RequestCollegeStockUoWFactory
	auditLog   ports.AuditLog
}

// NewCreateRequestCommandHandler creates a handler for request submission.
// Requires a RequestCollegeStockUoWFactory for transactional persistence;
// auditLog may be nil to disable transaction logging.
func NewCreateRequestCommandHandler(
	uowFactory RequestCollegeStockUoWFactory, auditLog ports.AuditLog,
) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
		auditLog:   auditLog,
	}
}

// Handle processes the request submission command.
// The referenced college and item must already be registered; a dangling
// reference fails with a wrapped errs.ErrObjectNotFound. The record is
// created in Pending status and the transaction log entry is appended after
// the commit succeeds.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
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

	if _, err := uow.CollegeRepository().Get(ctx, cmd.CollegeID()); err != nil {
		return err
	}

	if _, err := uow.StockRepository().Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	newRequest, err := request.NewRequest(
		cmd.RequestID(),
		cmd.CollegeID(),
		cmd.ItemID(),
		cmd.Quantity(),
		cmd.Purpose(),
		cmd.Kind(),
	)
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, newRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendAudit(ctx, h.auditLog, ports.AuditEntry{
		ActorID:    cmd.CollegeID(),
		Action:     ActionCreateRequest,
		SubjectRef: "request/" + cmd.RequestID().String(),
		Quantity:   cmd.Quantity(),
	})

	return nil
}
