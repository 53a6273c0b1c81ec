package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddServiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testWorkOrder(t, workorder.AwaitingApproval)
	svc := catalog.Service{ID: kernel.NewUUID(), Name: "Oil change", Price: kernel.NewMoney(15000)}
	cmd, err := commands.NewAddServiceCommand(order.ID().String(), svc.ID.String())
	require.NoError(t, err)

	linkID := kernel.NewUUID().String()

	orderRepo := new(MockWorkOrderRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, svc.ID).Return(svc, nil).Once(),
		orderRepo.On("LinkService", mock.Anything, order.ID(), svc.ID).Return(linkID, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, linkID, got)
	orderRepo.AssertExpectations(t)
	serviceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddServiceCommandHandler_Handle_OrderClosedForAdditions(t *testing.T) {
	closed := []workorder.Status{
		workorder.Finished,
		workorder.Cancelled,
		workorder.Rejected,
		workorder.Delivered,
	}

	for _, status := range closed {
		t.Run(string(status), func(t *testing.T) {
			ctx := t.Context()
			order := testWorkOrder(t, status)
			svc := catalog.Service{ID: kernel.NewUUID(), Name: "Alignment"}
			cmd, err := commands.NewAddServiceCommand(order.ID().String(), svc.ID.String())
			require.NoError(t, err)

			orderRepo := new(MockWorkOrderRepository)
			serviceRepo := new(MockServiceRepository)
			uow := new(MockCatalogUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("WorkOrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
				uow.On("ServiceRepository").Return(serviceRepo).Once(),
				serviceRepo.On("Get", mock.Anything, svc.ID).Return(svc, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockCatalogUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAddServiceCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrGuardViolation)
			require.Contains(t, err.Error(), "can no longer receive services")
			orderRepo.AssertNotCalled(t, "LinkService", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// The order resolves first, so a missing order reports not-found without a
// catalog lookup.
func TestAddServiceCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	serviceID := kernel.NewUUID()
	cmd, err := commands.NewAddServiceCommand(orderID.String(), serviceID.String())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("work order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	serviceRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAddServiceCommandHandler_Handle_ServiceNotFound(t *testing.T) {
	ctx := t.Context()
	order := testWorkOrder(t, workorder.Received)
	serviceID := kernel.NewUUID()
	cmd, err := commands.NewAddServiceCommand(order.ID().String(), serviceID.String())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	serviceRepo := new(MockServiceRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, serviceID).
			Return(catalog.Service{}, errs.NewObjectNotFoundError("service", serviceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "LinkService", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewAddServiceCommand_Validation(t *testing.T) {
	validID := kernel.NewUUID().String()

	_, err := commands.NewAddServiceCommand("", validID)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAddServiceCommand(validID, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAddServiceCommand(validID, "not-a-uuid")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
