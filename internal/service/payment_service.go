package service

import (
	"context"
	"time"

	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

type PaymentService struct {
	*base
}

func bookingRef(id model.ID) reference.Ref {
	return reference.Ref{Kind: model.KindBooking, Field: "booking_id", ID: id}
}

// Create принимает платёж только по активному бронированию.
func (s *PaymentService) Create(ctx context.Context, in model.PaymentCreate) (p *model.Payment, err error) {
	defer s.observe(ctx, model.KindPayment, opCreate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := reference.RequireActive(ctx, repos.Bookings.GetByID, bookingRef(in.BookingID)); err != nil {
			return err
		}
		p = &model.Payment{
			BookingID:     in.BookingID,
			PaymentType:   in.PaymentType,
			PaymentStatus: in.PaymentStatus,
			Amount:        in.Amount,
			PaymentDate:   model.DateOrToday(in.PaymentDate, s.now()),
		}
		return repos.Payments.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, activeOnly bool) (_ []model.Payment, err error) {
	defer s.observe(ctx, model.KindPayment, opList, time.Now(), &err)
	return s.repos.Payments.List(ctx, activeOnly)
}

func (s *PaymentService) GetByID(ctx context.Context, id model.ID) (_ *model.Payment, err error) {
	defer s.observe(ctx, model.KindPayment, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Payments.GetByID, model.KindPayment, id)
}

// Update перезаписывает платёж; бронирование проверяется на активность
// при каждом обновлении, даже если ссылка не менялась.
func (s *PaymentService) Update(ctx context.Context, id model.ID, in model.PaymentUpdate) (p *model.Payment, err error) {
	defer s.observe(ctx, model.KindPayment, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		p, err = reference.Lookup(ctx, repos.Payments.GetByID, model.KindPayment, id)
		if err != nil {
			return err
		}
		if _, err := reference.RequireActive(ctx, repos.Bookings.GetByID, bookingRef(in.BookingID)); err != nil {
			return err
		}
		p.BookingID = in.BookingID
		p.PaymentType = in.PaymentType
		p.PaymentStatus = in.PaymentStatus
		p.Amount = in.Amount
		return repos.Payments.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Payment], err error) {
	defer s.observe(ctx, model.KindPayment, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateSingle[model.Payment](ctx, repos.Payments, model.KindPayment, id)
		return err
	})
	return res, err
}
