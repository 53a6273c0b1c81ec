package catalogrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GORM material repository.
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// Add saves a new catalog material to the database.
func (r *GormMaterialRepository) Add(ctx context.Context, mat catalog.Material) error {
	dto := FromDomainMaterial(mat)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a catalog material by ID.
func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Material, error) {
	if err := id.Validate(); err != nil {
		return catalog.Material{}, err
	}

	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Material{}, errs.NewObjectNotFoundError("material", id.String())
		}
		return catalog.Material{}, err
	}

	return dto.ToDomain()
}

// GetAll retrieves every catalog material, sorted by name.
func (r *GormMaterialRepository) GetAll(ctx context.Context) ([]catalog.Material, error) {
	var dtos []MaterialDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	materials := make([]catalog.Material, 0, len(dtos))
	for _, dto := range dtos {
		mat, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		materials = append(materials, mat)
	}

	return materials, nil
}

// Update saves an existing catalog material to the database.
func (r *GormMaterialRepository) Update(ctx context.Context, mat catalog.Material) error {
	dto := FromDomainMaterial(mat)
	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("material", mat.ID.String())
	}
	return nil
}

// Delete removes a catalog material and reports whether a row was removed.
func (r *GormMaterialRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&MaterialDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
