package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testWorkOrder(t, workorder.InDiagnosis)
	desc := "replace brake pads"
	patch := workorder.Patch{Description: &desc}
	cmd, err := commands.NewUpdateWorkOrderCommand(order.ID().String(), patch)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order.ID(), patch).Return(order, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWorkOrderCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, got.IsEqual(order))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWorkOrderCommandHandler_Handle_PatchPassedThroughUntouched(t *testing.T) {
	ctx := t.Context()
	order := testWorkOrder(t, workorder.InProgress)
	status := workorder.Finished
	finishedAt := time.Date(2025, 3, 11, 16, 30, 0, 0, time.UTC)
	patch := workorder.Patch{Status: &status, FinishedAt: &finishedAt}
	cmd, err := commands.NewUpdateWorkOrderCommand(order.ID().String(), patch)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order.ID(), patch).Return(order, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateWorkOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateWorkOrderCommand{} // not constructed properly
	factory := new(MockWorkOrderUoWFactory)
	h := commands.NewUpdateWorkOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
