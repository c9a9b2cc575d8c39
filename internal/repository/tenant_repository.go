package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	GetByID(ctx context.Context, id model.ID) (*model.Tenant, error)
	List(ctx context.Context, activeOnly bool) ([]model.Tenant, error)
	Save(ctx context.Context, tenant *model.Tenant) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
}

type GormTenantRepository struct {
	crud[model.Tenant]
}

func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{crud[model.Tenant]{db: db, pk: "tenant_id"}}
}
