package clientrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, cl client.Client) error {
	dto := FromDomainClient(cl)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (client.Client, error) {
	if err := id.Validate(); err != nil {
		return client.Client{}, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client.Client{}, errs.NewObjectNotFoundError("client", id.String())
		}
		return client.Client{}, err
	}

	return dto.ToDomain()
}

// GetAll retrieves every client, sorted by name.
func (r *GormClientRepository) GetAll(ctx context.Context) ([]client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, 0, len(dtos))
	for _, dto := range dtos {
		cl, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		clients = append(clients, cl)
	}

	return clients, nil
}

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, cl client.Client) error {
	dto := FromDomainClient(cl)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", cl.ID.String())
	}
	return nil
}

// Delete removes a client and reports whether a row was removed.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
