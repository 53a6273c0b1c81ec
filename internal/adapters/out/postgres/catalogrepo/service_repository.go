package catalogrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM service repository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Add saves a new catalog service to the database.
func (r *GormServiceRepository) Add(ctx context.Context, svc catalog.Service) error {
	dto := FromDomainService(svc)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a catalog service by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return catalog.Service{}, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Service{}, errs.NewObjectNotFoundError("service", id.String())
		}
		return catalog.Service{}, err
	}

	return dto.ToDomain()
}

// GetAll retrieves every catalog service, sorted by name.
func (r *GormServiceRepository) GetAll(ctx context.Context) ([]catalog.Service, error) {
	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	services := make([]catalog.Service, 0, len(dtos))
	for _, dto := range dtos {
		svc, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, nil
}

// Update saves an existing catalog service to the database.
func (r *GormServiceRepository) Update(ctx context.Context, svc catalog.Service) error {
	dto := FromDomainService(svc)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service", svc.ID.String())
	}
	return nil
}

// Delete removes a catalog service and reports whether a row was removed.
func (r *GormServiceRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
