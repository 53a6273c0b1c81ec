// Package clientrepo persists clients. Clients are plain registry entities:
// the mapping is a direct field copy with no aggregate reconstruction.
package clientrepo

import (
	"time"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting clients.
type ClientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Document  string `gorm:"uniqueIndex"`
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// FromDomainClient converts a client entity to its database representation.
func FromDomainClient(cl client.Client) ClientDTO {
	return ClientDTO{
		ID:        cl.ID.Bytes(),
		Name:      cl.Name,
		Document:  cl.Document,
		Email:     cl.Email,
		Phone:     cl.Phone,
		CreatedAt: cl.CreatedAt,
		UpdatedAt: cl.UpdatedAt,
	}
}

// ToDomain converts the DTO back to the client entity.
func (dto ClientDTO) ToDomain() (client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return client.Client{}, err
	}

	return client.Client{
		ID:        id,
		Name:      dto.Name,
		Document:  dto.Document,
		Email:     dto.Email,
		Phone:     dto.Phone,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}
