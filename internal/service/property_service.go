package service

import (
	"context"
	"time"

	"github.com/Leganyst/rentlok/internal/cascade"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/reference"
	"github.com/Leganyst/rentlok/internal/repository"
)

// PropertyService управляет объектами недвижимости.
type PropertyService struct {
	*base
}

func (s *PropertyService) Create(ctx context.Context, in model.PropertyCreate) (p *model.Property, err error) {
	defer s.observe(ctx, model.KindProperty, opCreate, time.Now(), &err)

	owner := model.DefaultOwnerID
	if in.OwnerID != nil {
		owner = *in.OwnerID
	}
	p = &model.Property{
		Name:      in.Name,
		Address:   in.Address,
		NoOfRooms: in.NoOfRooms,
		OwnerID:   owner,
	}
	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		return repos.Properties.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context, activeOnly bool) (_ []model.Property, err error) {
	defer s.observe(ctx, model.KindProperty, opList, time.Now(), &err)
	return s.repos.Properties.List(ctx, activeOnly)
}

func (s *PropertyService) GetByID(ctx context.Context, id model.ID) (_ *model.Property, err error) {
	defer s.observe(ctx, model.KindProperty, opGet, time.Now(), &err)
	return reference.Lookup(ctx, s.repos.Properties.GetByID, model.KindProperty, id)
}

func (s *PropertyService) Update(ctx context.Context, id model.ID, in model.PropertyUpdate) (p *model.Property, err error) {
	defer s.observe(ctx, model.KindProperty, opUpdate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		p, err = reference.Lookup(ctx, repos.Properties.GetByID, model.KindProperty, id)
		if err != nil {
			return err
		}
		p.Name = in.Name
		p.Address = in.Address
		p.NoOfRooms = in.NoOfRooms
		return repos.Properties.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Deactivate гасит объект и каскадом все его комнаты.
// AffectedCount — число комнат, ставших неактивными.
func (s *PropertyService) Deactivate(ctx context.Context, id model.ID) (res cascade.Result[model.Property], err error) {
	defer s.observe(ctx, model.KindProperty, opDeactivate, time.Now(), &err)

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		res, err = cascade.DeactivateProperty(ctx, repos, id)
		return err
	})
	if err != nil {
		return cascade.Result[model.Property]{}, err
	}
	s.deactivated(ctx, model.KindProperty, model.KindRoom, id, res.AffectedCount)
	return res, nil
}
