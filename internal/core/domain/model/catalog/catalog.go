// Package catalog holds the billable catalog items a work order can link:
// services (labor) and materials (parts). Catalog management is plain CRUD;
// the order engine resolves items at link time and stores references, so
// later catalog price changes are reflected in open orders.
package catalog

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// Service is a billable labor item, priced in minor units.
type Service struct {
	ID        kernel.UUID
	Name      string
	Price     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Material is a stocked part. SalePrice applies to counter sales;
// InternalPrice is the amount billed when the material is consumed by a
// work order.
type Material struct {
	ID            kernel.UUID
	Name          string
	SKU           *string
	Description   *string
	StockQuantity int
	CostPrice     kernel.Money
	SalePrice     kernel.Money
	InternalPrice kernel.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
