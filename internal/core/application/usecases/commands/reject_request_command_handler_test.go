package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRejectRequestCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewRejectRequestCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestRejectRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := newPendingRequest(request.KindRequest, 5)
	cmd, _ := commands.NewRejectRequestCommand(pending.ID(), kernel.NewUUID(), "quantity exceeds quota")

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	auditLog := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		requestRepo.On("Transition", mock.Anything, pending, request.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	auditLog.On("Append", mock.Anything, mock.MatchedBy(func(e ports.AuditEntry) bool {
		return e.Action == commands.ActionRejectRequest
	})).Return(nil).Once()

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectRequestCommandHandler(factory, auditLog)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, request.Rejected, pending.Status())
	assert.Equal(t, "quantity exceeds quota", pending.RejectionReason())
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectRequestCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	approved := restoreRequestAt(request.KindRequest, request.ApprovedPickup, 5)
	cmd, _ := commands.NewRejectRequestCommand(approved.ID(), kernel.NewUUID(), "too late")

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectRequestCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, request.ErrInvalidTransition)
	assert.Equal(t, request.ApprovedPickup, approved.Status())
	uow.AssertNotCalled(t, "Commit")
}
