package ports

import (
	"context"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

// The registry repositories below cover the plain CRUD entities the order
// engine collaborates with. Their lifecycle carries no guarded transitions;
// the engine consumes these contracts as black boxes.

// ClientRepository is the persistence contract for clients.
type ClientRepository interface {
	Add(ctx context.Context, cl client.Client) error
	Get(ctx context.Context, id kernel.UUID) (client.Client, error)
	GetAll(ctx context.Context) ([]client.Client, error)
	Update(ctx context.Context, cl client.Client) error
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}

// VehicleRepository is the persistence contract for vehicles.
type VehicleRepository interface {
	Add(ctx context.Context, veh vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (vehicle.Vehicle, error)
	GetAllOfClient(ctx context.Context, clientID kernel.UUID) ([]vehicle.Vehicle, error)
	Update(ctx context.Context, veh vehicle.Vehicle) error
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}

// ServiceRepository is the persistence contract for catalog services.
type ServiceRepository interface {
	Add(ctx context.Context, svc catalog.Service) error
	Get(ctx context.Context, id kernel.UUID) (catalog.Service, error)
	GetAll(ctx context.Context) ([]catalog.Service, error)
	Update(ctx context.Context, svc catalog.Service) error
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}

// MaterialRepository is the persistence contract for catalog materials.
type MaterialRepository interface {
	Add(ctx context.Context, mat catalog.Material) error
	Get(ctx context.Context, id kernel.UUID) (catalog.Material, error)
	GetAll(ctx context.Context) ([]catalog.Material, error)
	Update(ctx context.Context, mat catalog.Material) error
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
