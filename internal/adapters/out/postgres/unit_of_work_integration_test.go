package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/catalogrepo"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/adapters/out/postgres/workorderrepo"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&vehiclerepo.VehicleDTO{},
		&catalogrepo.ServiceDTO{},
		&catalogrepo.MaterialDTO{},
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.ServiceLinkDTO{},
		&workorderrepo.MaterialLinkDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE work_order_services, work_order_materials, work_orders, services, materials, vehicles, clients",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(ctx context.Context, uow ports.UnitOfWork) *workorder.WorkOrder {
	cl := client.Client{
		ID:       kernel.NewUUID(),
		Name:     "Jane Doe",
		Document: kernel.NewUUID().String(),
	}
	suite.Require().NoError(uow.ClientRepository().Add(ctx, cl))

	veh := vehicle.Vehicle{
		ID:       kernel.NewUUID(),
		Brand:    "Honda",
		Model:    "Civic",
		Plate:    kernel.NewUUID().String()[:8],
		Year:     2021,
		ClientID: cl.ID,
	}
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, veh))

	order, err := workorder.NewWorkOrder(kernel.NewUUID(), cl, veh, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))
	return order
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.WorkOrderRepository())
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow1.VehicleRepository())
	suite.NotNil(uow2.ServiceRepository())
	suite.NotNil(uow2.MaterialRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	order := suite.seedOrder(ctx, uow)
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	got, err := verify.WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(order))
	suite.Equal("Jane Doe", got.Client().Name)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	order := suite.seedOrder(ctx, uow)
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().Error(err, "Rolled back order should not exist")

	var clientCount int64
	suite.Require().NoError(suite.db.Model(&clientrepo.ClientDTO{}).Count(&clientCount).Error)
	suite.Equal(int64(0), clientCount, "Rolled back client should not exist")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
