// Package client holds the Client entity. Client lifecycle management is a
// plain CRUD concern outside the order engine; the engine only resolves
// clients at work-order creation time and renders them in representations.
package client

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// Client is a workshop customer that work orders are opened for.
type Client struct {
	ID        kernel.UUID
	Name      string
	Document  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
