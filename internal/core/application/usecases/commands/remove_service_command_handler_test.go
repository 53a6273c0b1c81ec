package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveServiceCommandHandler_Handle_Success(t *testing.T) {
	allowed := []workorder.Status{workorder.Received, workorder.AwaitingApproval}

	for _, status := range allowed {
		t.Run(string(status), func(t *testing.T) {
			ctx := t.Context()
			order := testWorkOrder(t, status)
			serviceID := kernel.NewUUID()
			cmd, err := commands.NewRemoveServiceCommand(order.ID().String(), serviceID.String())
			require.NoError(t, err)

			repo := new(MockWorkOrderRepository)
			uow := new(MockWorkOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("WorkOrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
				repo.On("UnlinkService", mock.Anything, order.ID(), serviceID).Return(int64(1), nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockWorkOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewRemoveServiceCommandHandler(factory)
			affected, err := h.Handle(ctx, cmd)
			require.NoError(t, err)
			require.Equal(t, int64(1), affected)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestRemoveServiceCommandHandler_Handle_StatusForbidsRemoval(t *testing.T) {
	forbidden := []workorder.Status{
		workorder.InDiagnosis,
		workorder.Approved,
		workorder.Rejected,
		workorder.Cancelled,
		workorder.InProgress,
		workorder.Finished,
		workorder.Delivered,
	}

	for _, status := range forbidden {
		t.Run(string(status), func(t *testing.T) {
			ctx := t.Context()
			order := testWorkOrder(t, status)
			serviceID := kernel.NewUUID()
			cmd, err := commands.NewRemoveServiceCommand(order.ID().String(), serviceID.String())
			require.NoError(t, err)

			repo := new(MockWorkOrderRepository)
			uow := new(MockWorkOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("WorkOrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockWorkOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewRemoveServiceCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrGuardViolation)
			require.Contains(t, err.Error(), "services removed")
			repo.AssertNotCalled(t, "UnlinkService", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRemoveServiceCommandHandler_Handle_UnlinkFailure(t *testing.T) {
	ctx := t.Context()
	order := testWorkOrder(t, workorder.Received)
	serviceID := kernel.NewUUID()
	cmd, err := commands.NewRemoveServiceCommand(order.ID().String(), serviceID.String())
	require.NoError(t, err)

	failure := errs.NewPersistenceFailureError("unlink service")

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("UnlinkService", mock.Anything, order.ID(), serviceID).Return(int64(0), failure).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveServiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
