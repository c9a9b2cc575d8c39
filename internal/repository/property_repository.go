package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	// Найти объект по ID (в том числе неактивный).
	GetByID(ctx context.Context, id model.ID) (*model.Property, error)
	List(ctx context.Context, activeOnly bool) ([]model.Property, error)
	Save(ctx context.Context, property *model.Property) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormPropertyRepository struct {
	crud[model.Property]
}

func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{crud[model.Property]{db: db, pk: "property_id"}}
}
