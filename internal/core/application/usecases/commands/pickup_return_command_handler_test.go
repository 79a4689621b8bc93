package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickupReturnCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	approved := restoreRequestAt(request.KindReturn, request.ApprovedPickupReturn, 4)
	courierID := kernel.NewUUID()
	cmd, _ := commands.NewPickupReturnCommand(approved.ID(), courierID)

	requestRepo := new(MockRequestRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockRequestCustodyUoW)
	auditLog := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		requestRepo.On("Transition", mock.Anything, approved, request.ApprovedPickupReturn).Return(nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("Release", mock.Anything, approved.CollegeID(), approved.ItemID(), 4).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	auditLog.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockRequestCustodyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickupReturnCommandHandler(factory, auditLog)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, request.InTransitToInventory, approved.Status())
	require.NotNil(t, approved.Courier())
	require.True(t, courierID.IsEqual(*approved.Courier()))
	requestRepo.AssertExpectations(t)
	custodyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickupReturnCommandHandler_Handle_InsufficientCustodyRollsBack(t *testing.T) {
	ctx := t.Context()
	approved := restoreRequestAt(request.KindReturn, request.ApprovedPickupReturn, 9)
	cmd, _ := commands.NewPickupReturnCommand(approved.ID(), kernel.NewUUID())

	requestRepo := new(MockRequestRepository)
	custodyRepo := new(MockCustodyRepository)
	uow := new(MockRequestCustodyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		requestRepo.On("Transition", mock.Anything, approved, request.ApprovedPickupReturn).Return(nil).Once(),
		uow.On("CustodyRepository").Return(custodyRepo).Once(),
		custodyRepo.On("Release", mock.Anything, approved.CollegeID(), approved.ItemID(), 9).
			Return(custody.ErrInsufficientCustody).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestCustodyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickupReturnCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, custody.ErrInsufficientCustody)
	uow.AssertNotCalled(t, "Commit")
}

func TestPickupReturnCommandHandler_Handle_CrossFlowRefused(t *testing.T) {
	ctx := t.Context()
	approvedRequest := restoreRequestAt(request.KindRequest, request.ApprovedPickup, 5)
	cmd, _ := commands.NewPickupReturnCommand(approvedRequest.ID(), kernel.NewUUID())

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestCustodyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, approvedRequest.ID()).Return(approvedRequest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestCustodyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPickupReturnCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, request.ErrInvalidTransition)
	require.Equal(t, request.ApprovedPickup, approvedRequest.Status())
	uow.AssertNotCalled(t, "CustodyRepository")
}
