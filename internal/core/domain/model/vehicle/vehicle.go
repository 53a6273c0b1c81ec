// Package vehicle holds the Vehicle entity. Like clients, vehicles are plain
// CRUD records resolved by the order engine at creation time.
package vehicle

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// Vehicle belongs to exactly one client at any time.
type Vehicle struct {
	ID        kernel.UUID
	Brand     string
	Model     string
	Plate     string
	Year      int
	ClientID  kernel.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
