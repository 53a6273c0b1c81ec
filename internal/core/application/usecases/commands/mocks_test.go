package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*workorder.WorkOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderRepository) Update(
	ctx context.Context, id kernel.UUID, patch workorder.Patch,
) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id, patch)
	if order, ok := args.Get(0).(*workorder.WorkOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, status workorder.Status,
) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id, status)
	if order, ok := args.Get(0).(*workorder.WorkOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkOrderRepository) List(
	_ context.Context, _ *workorder.Status,
) ([]*workorder.WorkOrder, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockWorkOrderRepository) LinkService(
	ctx context.Context, orderID, serviceID kernel.UUID,
) (string, error) {
	args := m.Called(ctx, orderID, serviceID)
	return args.String(0), args.Error(1)
}

func (m *MockWorkOrderRepository) UnlinkService(
	ctx context.Context, orderID, serviceID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, orderID, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) LinkMaterial(
	ctx context.Context, orderID, materialID kernel.UUID,
) (string, error) {
	args := m.Called(ctx, orderID, materialID)
	return args.String(0), args.Error(1)
}

func (m *MockWorkOrderRepository) UnlinkMaterial(
	ctx context.Context, orderID, materialID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, orderID, materialID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllOfClientWithStatus(
	_ context.Context, _ kernel.UUID, _ workorder.Status,
) ([]*workorder.WorkOrder, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockWorkOrderRepository) GetAllOfClientWithStatusNot(
	ctx context.Context, clientID kernel.UUID, status workorder.Status,
) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, clientID, status)
	if orders, ok := args.Get(0).([]*workorder.WorkOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(_ context.Context, _ client.Client) error {
	return errors.New("not implemented in mock")
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (client.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(_ context.Context) ([]client.Client, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockClientRepository) Update(_ context.Context, _ client.Client) error {
	return errors.New("not implemented in mock")
}

func (m *MockClientRepository) Delete(_ context.Context, _ kernel.UUID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(_ context.Context, _ vehicle.Vehicle) error {
	return errors.New("not implemented in mock")
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllOfClient(
	_ context.Context, _ kernel.UUID,
) ([]vehicle.Vehicle, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockVehicleRepository) Update(_ context.Context, _ vehicle.Vehicle) error {
	return errors.New("not implemented in mock")
}

func (m *MockVehicleRepository) Delete(_ context.Context, _ kernel.UUID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(_ context.Context, _ catalog.Service) error {
	return errors.New("not implemented in mock")
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Service, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) GetAll(_ context.Context) ([]catalog.Service, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockServiceRepository) Update(_ context.Context, _ catalog.Service) error {
	return errors.New("not implemented in mock")
}

func (m *MockServiceRepository) Delete(_ context.Context, _ kernel.UUID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(_ context.Context, _ catalog.Material) error {
	return errors.New("not implemented in mock")
}

func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Material, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetAll(_ context.Context) ([]catalog.Material, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMaterialRepository) Update(_ context.Context, _ catalog.Material) error {
	return errors.New("not implemented in mock")
}

func (m *MockMaterialRepository) Delete(_ context.Context, _ kernel.UUID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockIntakeUoW struct {
	MockWorkOrderUoW
}

func (m *MockIntakeUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockIntakeUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockCatalogUoW struct {
	MockWorkOrderUoW
}

func (m *MockCatalogUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

func (m *MockCatalogUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

func testWorkOrder(t *testing.T, status workorder.Status) *workorder.WorkOrder {
	t.Helper()

	cl := client.Client{ID: kernel.NewUUID(), Name: "John Smith"}
	veh := vehicle.Vehicle{ID: kernel.NewUUID(), Brand: "Toyota", Model: "Corolla", Plate: "ABC1D23", ClientID: cl.ID}

	order, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), cl, veh, nil, status,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		nil, nil, nil, nil,
	)
	require.NoError(t, err)
	return order
}
