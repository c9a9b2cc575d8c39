package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/model"
)

type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	GetByID(ctx context.Context, id model.ID) (*model.Request, error)
	// Список заявок, самые свежие первыми.
	List(ctx context.Context, activeOnly bool) ([]model.Request, error)
	Save(ctx context.Context, request *model.Request) error
	Deactivate(ctx context.Context, id model.ID) error
	CountAll(ctx context.Context) (int64, error)
}

type GormRequestRepository struct {
	crud[model.Request]
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{crud[model.Request]{db: db, pk: "request_id"}}
}

func (r *GormRequestRepository) List(ctx context.Context, activeOnly bool) ([]model.Request, error) {
	return r.list(ctx, activeOnly, "request_date DESC, request_id DESC")
}
