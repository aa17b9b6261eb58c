package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/safe/backend/internal/domain/shared"
)

// BaseModel holds the persistence columns every table shares.
// Timestamps are owned by the domain layer, so GORM auto-update
// tracking is not used.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func baseModelFrom(e shared.BaseEntity) BaseModel {
	return BaseModel{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m BaseModel) entity() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
