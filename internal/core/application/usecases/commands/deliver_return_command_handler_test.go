package commands_test

import (
	"errors"
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverReturnCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	inTransit := restoreRequestAt(request.KindReturn, request.InTransitToInventory, 6)
	cmd, _ := commands.NewDeliverReturnCommand(inTransit.ID(), *inTransit.Courier())

	requestRepo := new(MockRequestRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockRequestStockUoW)
	auditLog := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, inTransit.ID()).Return(inTransit, nil).Once(),
		requestRepo.On("Transition", mock.Anything, inTransit, request.InTransitToInventory).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("AdjustCentralStock", mock.Anything, inTransit.ItemID(), 6).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	auditLog.On("Append", mock.Anything, mock.MatchedBy(func(e ports.AuditEntry) bool {
		return e.Action == commands.ActionDeliverReturn && e.Quantity == 6
	})).Return(nil).Once()

	factory := new(MockRequestStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverReturnCommandHandler(factory, auditLog)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, request.ReceivedAtInventory, inTransit.Status())
	requestRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverReturnCommandHandler_Handle_RestockErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	inTransit := restoreRequestAt(request.KindReturn, request.InTransitToInventory, 6)
	cmd, _ := commands.NewDeliverReturnCommand(inTransit.ID(), kernel.NewUUID())

	requestRepo := new(MockRequestRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockRequestStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, inTransit.ID()).Return(inTransit, nil).Once(),
		requestRepo.On("Transition", mock.Anything, inTransit, request.InTransitToInventory).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("AdjustCentralStock", mock.Anything, inTransit.ItemID(), 6).
			Return(errors.New("restock error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverReturnCommandHandler(factory, nil)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit")
}

func TestDeliverReturnCommandHandler_Handle_CrossFlowRefused(t *testing.T) {
	ctx := t.Context()
	requestInTransit := restoreRequestAt(request.KindRequest, request.InTransitToCollege, 5)
	cmd, _ := commands.NewDeliverReturnCommand(requestInTransit.ID(), kernel.NewUUID())

	requestRepo := new(MockRequestRepository)
	uow := new(MockRequestStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", mock.Anything, requestInTransit.ID()).Return(requestInTransit, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverReturnCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, request.ErrInvalidTransition)
	require.Equal(t, request.InTransitToCollege, requestInTransit.Status())
	uow.AssertNotCalled(t, "StockRepository")
}
