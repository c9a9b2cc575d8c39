// Package cascade реализует мягкое удаление с каскадом на зависимые
// записи: Property → Room, Booking → Payment. Room и Tenant на Booking
// не каскадируются.
package cascade

import (
	"context"

	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/occupancy"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

// Result — деактивированная запись и число затронутых дочерних записей.
type Result[T any] struct {
	Deactivated   *T
	AffectedCount int64
}

// Store — операции, нужные для деактивации одиночной записи.
type Store[T any] interface {
	GetByID(ctx context.Context, id model.ID) (*T, error)
	Deactivate(ctx context.Context, id model.ID) error
}

// DeactivateSingle деактивирует запись без каскада (Room, Tenant, Payment, Request).
func DeactivateSingle[T any](ctx context.Context, store Store[T], kind model.Kind, id model.ID) (Result[T], error) {
	if _, err := reference.Lookup(ctx, store.GetByID, kind, id); err != nil {
		return Result[T]{}, err
	}
	if err := store.Deactivate(ctx, id); err != nil {
		return Result[T]{}, err
	}
	entity, err := store.GetByID(ctx, id)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Deactivated: entity}, nil
}

// DeactivateProperty гасит объект и все его активные комнаты.
// Бронирования и заявки объекта не трогаются.
func DeactivateProperty(ctx context.Context, repos *repository.Repositories, id model.ID) (Result[model.Property], error) {
	if _, err := reference.Lookup(ctx, repos.Properties.GetByID, model.KindProperty, id); err != nil {
		return Result[model.Property]{}, err
	}
	if err := repos.Properties.Deactivate(ctx, id); err != nil {
		return Result[model.Property]{}, err
	}
	affected, err := repos.Rooms.DeactivateByProperty(ctx, id)
	if err != nil {
		return Result[model.Property]{}, err
	}
	property, err := repos.Properties.GetByID(ctx, id)
	if err != nil {
		return Result[model.Property]{}, err
	}
	return Result[model.Property]{Deactivated: property, AffectedCount: affected}, nil
}

// DeactivateBooking освобождает комнату бронирования (если её не держит
// другое действующее бронирование), гасит само бронирование и все его
// активные платежи. Повторная деактивация снова пытается освободить комнату.
func DeactivateBooking(ctx context.Context, repos *repository.Repositories, id model.ID) (Result[model.Booking], error) {
	booking, err := reference.Lookup(ctx, repos.Bookings.GetByID, model.KindBooking, id)
	if err != nil {
		return Result[model.Booking]{}, err
	}
	// комнату, которую уже заняло другое действующее бронирование, не освобождаем
	taken, err := repos.Bookings.OpenForRoomExcept(ctx, booking.RoomID, id)
	if err != nil {
		return Result[model.Booking]{}, err
	}
	if !taken {
		if err := occupancy.Vacate(ctx, repos.Rooms, booking.RoomID, occupancy.BookingDeactivated); err != nil {
			return Result[model.Booking]{}, err
		}
	}
	if err := repos.Bookings.Deactivate(ctx, id); err != nil {
		return Result[model.Booking]{}, err
	}
	affected, err := repos.Payments.DeactivateByBooking(ctx, id)
	if err != nil {
		return Result[model.Booking]{}, err
	}
	booking.Active = false
	return Result[model.Booking]{Deactivated: booking, AffectedCount: affected}, nil
}
