package cmd

import (
	"log/slog"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	return commands.NewUpdateWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWorkOrderStatusCommandHandler() commands.UpdateWorkOrderStatusCommandHandler {
	return commands.NewUpdateWorkOrderStatusCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateApproveWorkOrderCommandHandler() commands.ApproveWorkOrderCommandHandler {
	return commands.NewApproveWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateDisapproveWorkOrderCommandHandler() commands.DisapproveWorkOrderCommandHandler {
	return commands.NewDisapproveWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	return commands.NewDeleteWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateAddServiceCommandHandler() commands.AddServiceCommandHandler {
	return commands.NewAddServiceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveServiceCommandHandler() commands.RemoveServiceCommandHandler {
	return commands.NewRemoveServiceCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateAddMaterialCommandHandler() commands.AddMaterialCommandHandler {
	return commands.NewAddMaterialCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMaterialCommandHandler() commands.RemoveMaterialCommandHandler {
	return commands.NewRemoveMaterialCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.uowFactory.Create().WorkOrderRepository())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.uowFactory.Create().WorkOrderRepository())
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatusSummaryQueryHandler(), logger)
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
