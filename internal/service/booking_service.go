package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/occupancy"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

// BookingService управляет бронированиями и через них занятостью комнат.
type BookingService struct {
	*base
}

func roomRef(id model.ID) reference.Ref {
	return reference.Ref{Kind: model.KindRoom, Field: "room_id", ID: id}
}

func tenantRef(id model.ID) reference.Ref {
	return reference.Ref{Kind: model.KindTenant, Field: "tenant_id", ID: id}
}

func checkBookingStatus(status model.BookingStatus) error {
	if !status.Valid() {
		return apperr.InvalidEnumValue(model.KindBooking, "status", string(status))
	}
	return nil
}

// Create проверяет объект, комнату (активна и принадлежит объекту) и
// арендатора, затем занимает комнату и сохраняет бронирование.
// Комната занимается при любом объявленном статусе.
func (s *BookingService) Create(ctx context.Context, in model.BookingCreate) (b *model.Booking, err error) {
	defer s.observe(ctx, model.KindBooking, opCreate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		for _, ref := range []reference.Ref{propertyRef(in.PropertyID), roomRef(in.RoomID), tenantRef(in.TenantID)} {
			if err := reference.RequirePresent(ref); err != nil {
				return err
			}
		}
		if _, err := reference.RequireActive(ctx, repos.Properties.GetByID, propertyRef(in.PropertyID)); err != nil {
			return err
		}
		if _, err := reference.RequireActive(ctx, repos.Rooms.GetByID, roomRef(in.RoomID), reference.RoomInProperty(in.PropertyID)); err != nil {
			return err
		}
		if _, err := reference.RequireActive(ctx, repos.Tenants.GetByID, tenantRef(in.TenantID)); err != nil {
			return err
		}
		if err := checkBookingStatus(in.Status); err != nil {
			return err
		}

		if err := occupancy.Occupy(ctx, repos.Rooms, in.RoomID); err != nil {
			return err
		}

		b = &model.Booking{
			RoomID:      in.RoomID,
			TenantID:    in.TenantID,
			PropertyID:  in.PropertyID,
			MoveInDate:  model.DateOrToday(in.MoveInDate, s.now()),
			MoveOutDate: model.OptionalDate(in.MoveOutDate),
			Status:      in.Status,
		}
		return repos.Bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) List(ctx context.Context, activeOnly bool) (_ []model.Booking, err error) {
	defer s.observe(ctx, model.KindBooking, opList, time.Now(), &err)
	return s.repos.Bookings.List(ctx, activeOnly)
}

func (s *BookingService) GetByID(ctx context.Context, id model.ID) (_ *model.Booking, err error) {
	defer s.observe(ctx, model.KindBooking, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Bookings.GetByID, model.KindBooking, id)
}

// Update перезаписывает бронирование целиком.
//
// Изменённые ссылки проверяются на активность, новая пара комната/объект
// проверяется на принадлежность. Если статус впервые становится completed или
// terminated, освобождается комната, записанная в бронировании до
// обновления. Смена комнаты сама по себе занятость не переносит.
func (s *BookingService) Update(ctx context.Context, id model.ID, in model.BookingUpdate) (b *model.Booking, err error) {
	defer s.observe(ctx, model.KindBooking, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		b, err = reference.Lookup(ctx, repos.Bookings.GetByID, model.KindBooking, id)
		if err != nil {
			return err
		}

		for _, ref := range []reference.Ref{roomRef(in.RoomID), tenantRef(in.TenantID), propertyRef(in.PropertyID)} {
			if err := reference.RequirePresent(ref); err != nil {
				return err
			}
		}

		roomChanged := in.RoomID != b.RoomID
		if roomChanged {
			if _, err := reference.RequireActive(ctx, repos.Rooms.GetByID, roomRef(in.RoomID), reference.RoomInProperty(in.PropertyID)); err != nil {
				return err
			}
		}
		if in.TenantID != b.TenantID {
			if _, err := reference.RequireActive(ctx, repos.Tenants.GetByID, tenantRef(in.TenantID)); err != nil {
				return err
			}
		}
		if in.PropertyID != b.PropertyID {
			if _, err := reference.RequireActive(ctx, repos.Properties.GetByID, propertyRef(in.PropertyID)); err != nil {
				return err
			}
			if !roomChanged {
				if err := requireRoomInProperty(ctx, repos, b.RoomID, in.PropertyID); err != nil {
					return err
				}
			}
		}
		if err := checkBookingStatus(in.Status); err != nil {
			return err
		}

		if in.Status.Closed() && !b.Status.Closed() {
			if err := occupancy.Vacate(ctx, repos.Rooms, b.RoomID, occupancy.BookingClosed); err != nil {
				return err
			}
		}

		b.RoomID = in.RoomID
		b.TenantID = in.TenantID
		b.PropertyID = in.PropertyID
		b.MoveOutDate = model.OptionalDate(in.MoveOutDate)
		b.Status = in.Status
		return repos.Bookings.Save(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// requireRoomInProperty проверяет связь уже записанной комнаты с новым
// объектом. Активность комнаты здесь не требуется: ссылка на неё не менялась.
func requireRoomInProperty(ctx context.Context, repos *repository.Repositories, roomID, propertyID model.ID) error {
	room, err := repos.Rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ReferenceNotFound(model.KindRoom, "room_id", roomID)
		}
		return err
	}
	if room.PropertyID != propertyID {
		return apperr.RelationshipMismatch(model.KindRoom, "room_id", roomID,
			fmt.Sprintf("room does not belong to property %d", propertyID))
	}
	return nil
}

// Deactivate освобождает комнату, гасит бронирование и все его платежи.
// AffectedCount — число платежей, ставших неактивными.
func (s *BookingService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Booking], err error) {
	defer s.observe(ctx, model.KindBooking, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateBooking(ctx, repos, id)
		return err
	})
	if err != nil {
		return cascade.Result[model.Booking]{}, err
	}
	s.deactivated(ctx, model.KindBooking, model.KindPayment, id, res.AffectedCount)
	return res, nil
}
