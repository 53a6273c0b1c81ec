// Package commands contains the business operations that mutate work orders.
// Each command handler owns the guard logic for exactly one operation and is
// the only place where that operation's state legality is enforced. Handlers
// follow a consistent pattern: command validation, transaction management,
// guards, a single write, commit.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest repository set its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work-order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ServiceRepoFactory provides access to the catalog service repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// MaterialRepoFactory provides access to the catalog material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// WorkOrderUoW manages transactions for operations touching only the
	// work-order aggregate: update, status changes, approval, deletion and
	// link removal.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// IntakeUoW manages transactions for work-order creation, which resolves
	// the client and vehicle before writing the order.
	IntakeUoW interface {
		TxManager
		WorkOrderRepoFactory
		ClientRepoFactory
		VehicleRepoFactory
	}

	// IntakeUoWFactory creates intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// CatalogUoW manages transactions for link additions, which resolve the
	// catalog item before writing the link.
	CatalogUoW interface {
		TxManager
		WorkOrderRepoFactory
		ServiceRepoFactory
		MaterialRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
