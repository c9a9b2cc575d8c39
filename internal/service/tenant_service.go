package service

import (
	"context"
	"time"

	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

type TenantService struct {
	*base
}

func (s *TenantService) Create(ctx context.Context, in model.TenantCreate) (tn *model.Tenant, err error) {
	defer s.observe(ctx, model.KindTenant, opCreate, time.Now(), &err)

	tn = &model.Tenant{Name: in.Name, PhoneNo: in.PhoneNo, Details: in.Details}
	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		return repos.Tenants.Create(ctx, tn)
	})
	if err != nil {
		return nil, err
	}
	return tn, nil
}

func (s *TenantService) List(ctx context.Context, activeOnly bool) (_ []model.Tenant, err error) {
	defer s.observe(ctx, model.KindTenant, opList, time.Now(), &err)
	return s.repos.Tenants.List(ctx, activeOnly)
}

func (s *TenantService) GetByID(ctx context.Context, id model.ID) (_ *model.Tenant, err error) {
	defer s.observe(ctx, model.KindTenant, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Tenants.GetByID, model.KindTenant, id)
}

func (s *TenantService) Update(ctx context.Context, id model.ID, in model.TenantUpdate) (tn *model.Tenant, err error) {
	defer s.observe(ctx, model.KindTenant, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		tn, err = reference.Lookup(ctx, repos.Tenants.GetByID, model.KindTenant, id)
		if err != nil {
			return err
		}
		tn.Name = in.Name
		tn.PhoneNo = in.PhoneNo
		tn.Details = in.Details
		return repos.Tenants.Save(ctx, tn)
	})
	if err != nil {
		return nil, err
	}
	return tn, nil
}

// Deactivate гасит только арендатора: его бронирования остаются активными.
func (s *TenantService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Tenant], err error) {
	defer s.observe(ctx, model.KindTenant, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateSingle[model.Tenant](ctx, repos.Tenants, model.KindTenant, id)
		return err
	})
	return res, err
}
