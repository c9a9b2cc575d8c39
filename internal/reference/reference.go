// Package reference проверяет внешние ключи перед любой записью:
// ссылка задана, запись существует, активна и удовлетворяет
// дополнительным условиям связи.
package reference

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/model"
)

// FindFunc загружает запись по ID; для отсутствующей записи возвращает
// gorm.ErrRecordNotFound (так ведут себя GetByID репозиториев).
type FindFunc[T any] func(ctx context.Context, id model.ID) (*T, error)

// Ref описывает проверяемую ссылку: тип цели, поле-источник и значение.
type Ref struct {
	Kind  model.Kind
	Field string
	ID    model.ID
}

// Predicate — дополнительное условие связи, например
// «комната принадлежит объекту бронирования».
type Predicate[T any] struct {
	Relation string
	Holds    func(*T) bool
}

// RequirePresent отклоняет незаданную ссылку.
func RequirePresent(ref Ref) error {
	if ref.ID.IsZero() {
		return apperr.InvalidReference(ref.Kind, ref.Field)
	}
	return nil
}

// RequireActive:
//   - проверяет, что ссылка задана;
//   - вытаскивает запись из хранилища;
//   - проверяет флаг активности;
//   - проверяет дополнительные условия связи;
//   - возвращает найденную запись или ошибку.
//
// Ошибки хранилища возвращаются без изменений.
func RequireActive[T model.SoftDeletable](
	ctx context.Context,
	find FindFunc[T],
	ref Ref,
	preds ...Predicate[T],
) (*T, error) {
	if err := RequirePresent(ref); err != nil {
		return nil, err
	}

	entity, err := find(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ReferenceNotFound(ref.Kind, ref.Field, ref.ID)
		}
		return nil, err
	}
	if entity == nil {
		return nil, apperr.ReferenceNotFound(ref.Kind, ref.Field, ref.ID)
	}

	if !(*entity).IsActive() {
		return nil, apperr.ReferenceNotActive(ref.Kind, ref.Field, ref.ID)
	}

	for _, p := range preds {
		if !p.Holds(entity) {
			return nil, apperr.RelationshipMismatch(ref.Kind, ref.Field, ref.ID, p.Relation)
		}
	}

	return entity, nil
}
