package reference

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

// Lookup находит запись по её собственному ID. В отличие от RequireActive
// флаг активности не проверяется: по ID доступны и неактивные записи.
func Lookup[T any](ctx context.Context, find FindFunc[T], kind model.Kind, id model.ID) (*T, error) {
	if id.IsZero() {
		return nil, apperr.InvalidIdentity(kind)
	}
	entity, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(kind, id)
		}
		return nil, err
	}
	return entity, nil
}
