package service

import (
	"context"
	"time"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

// RoomService управляет комнатами. Статус комнаты, заданный здесь
// напрямую, проверяется только на допустимость значения; дальше его
// меняют бронирования.
type RoomService struct {
	*base
}

func propertyRef(id model.ID) reference.Ref {
	return reference.Ref{Kind: model.KindProperty, Field: "property_id", ID: id}
}

// checkRoomFields — общая проверка для создания и обновления комнаты.
func checkRoomFields(ctx context.Context, repos *repository.Repositories, propertyID model.ID, status model.OperationalStatus) error {
	ref := propertyRef(propertyID)
	if err := reference.RequirePresent(ref); err != nil {
		return err
	}
	if !status.Valid() {
		return apperr.InvalidEnumValue(model.KindRoom, "operational_status", string(status))
	}
	_, err := reference.RequireActive(ctx, repos.Properties.GetByID, ref)
	return err
}

func (s *RoomService) Create(ctx context.Context, in model.RoomCreate) (r *model.Room, err error) {
	defer s.observe(ctx, model.KindRoom, opCreate, time.Now(), &err)

	r = &model.Room{
		RoomNo:            in.RoomNo,
		FloorNo:           in.FloorNo,
		PropertyID:        in.PropertyID,
		OperationalStatus: in.OperationalStatus,
		RoomType:          in.RoomType,
		RentPerMonth:      in.RentPerMonth,
	}
	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if err := checkRoomFields(ctx, repos, in.PropertyID, in.OperationalStatus); err != nil {
			return err
		}
		return repos.Rooms.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoomService) List(ctx context.Context, activeOnly bool) (_ []model.Room, err error) {
	defer s.observe(ctx, model.KindRoom, opList, time.Now(), &err)
	return s.repos.Rooms.List(ctx, activeOnly)
}

func (s *RoomService) GetByID(ctx context.Context, id model.ID) (_ *model.Room, err error) {
	defer s.observe(ctx, model.KindRoom, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Rooms.GetByID, model.KindRoom, id)
}

// Update перезаписывает все поля комнаты. Комнату можно перенести в
// другой активный объект.
func (s *RoomService) Update(ctx context.Context, id model.ID, in model.RoomUpdate) (r *model.Room, err error) {
	defer s.observe(ctx, model.KindRoom, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		r, err = reference.Lookup(ctx, repos.Rooms.GetByID, model.KindRoom, id)
		if err != nil {
			return err
		}
		if err := checkRoomFields(ctx, repos, in.PropertyID, in.OperationalStatus); err != nil {
			return err
		}
		r.RoomNo = in.RoomNo
		r.FloorNo = in.FloorNo
		r.PropertyID = in.PropertyID
		r.OperationalStatus = in.OperationalStatus
		r.RoomType = in.RoomType
		r.RentPerMonth = in.RentPerMonth
		return repos.Rooms.Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Deactivate гасит только комнату: бронирования по ней не трогаются.
func (s *RoomService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Room], err error) {
	defer s.observe(ctx, model.KindRoom, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateSingle[model.Room](ctx, repos.Rooms, model.KindRoom, id)
		return err
	})
	return res, err
}
