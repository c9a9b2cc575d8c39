package service

import (
	"context"
	"time"

	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

// RequestService управляет заявками потенциальных арендаторов.
type RequestService struct {
	*base
}

func (s *RequestService) Create(ctx context.Context, in model.RequestCreate) (r *model.Request, err error) {
	defer s.observe(ctx, model.KindRequest, opCreate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := reference.RequireActive(ctx, repos.Properties.GetByID, propertyRef(in.PropertyID)); err != nil {
			return err
		}
		r = &model.Request{
			PropertyID:  in.PropertyID,
			TenantName:  in.TenantName,
			PhoneNo:     in.PhoneNo,
			Details:     in.Details,
			RequestDate: model.DateOrToday(in.RequestDate, s.now()),
		}
		return repos.Requests.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List возвращает заявки, самые свежие первыми.
func (s *RequestService) List(ctx context.Context, activeOnly bool) (_ []model.Request, err error) {
	defer s.observe(ctx, model.KindRequest, opList, time.Now(), &err)
	return s.repos.Requests.List(ctx, activeOnly)
}

func (s *RequestService) GetByID(ctx context.Context, id model.ID) (_ *model.Request, err error) {
	defer s.observe(ctx, model.KindRequest, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Requests.GetByID, model.KindRequest, id)
}

// Update перезаписывает заявку; объект проверяется на активность только
// при смене ссылки.
func (s *RequestService) Update(ctx context.Context, id model.ID, in model.RequestUpdate) (r *model.Request, err error) {
	defer s.observe(ctx, model.KindRequest, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		r, err = reference.Lookup(ctx, repos.Requests.GetByID, model.KindRequest, id)
		if err != nil {
			return err
		}
		ref := propertyRef(in.PropertyID)
		if err := reference.RequirePresent(ref); err != nil {
			return err
		}
		if in.PropertyID != r.PropertyID {
			if _, err := reference.RequireActive(ctx, repos.Properties.GetByID, ref); err != nil {
				return err
			}
		}
		r.PropertyID = in.PropertyID
		r.TenantName = in.TenantName
		r.PhoneNo = in.PhoneNo
		r.Details = in.Details
		return repos.Requests.Save(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RequestService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Request], err error) {
	defer s.observe(ctx, model.KindRequest, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateSingle[model.Request](ctx, repos.Requests, model.KindRequest, id)
		return err
	})
	return res, err
}
