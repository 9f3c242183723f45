package service

import (
	"context"
	"fmt"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/pkg/latency"
)

const entityUnit = "unit"

type UnitService interface {
	// List returns the active units, the pick-list of the product form
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.Unit], error)
	All(ctx context.Context) ([]model.Unit, error)
	Get(ctx context.Context, id int64) (*model.Unit, error)
	Create(ctx context.Context, req *model.Unit) (*model.Unit, error)
	Update(ctx context.Context, id int64, req *model.Unit) (*model.Unit, error)
	Delete(ctx context.Context, id int64) error
}

type unitService struct {
	catalog *Catalog
	rt      Runtime
}

func NewUnitService(catalog *Catalog, rt Runtime) UnitService {
	return &unitService{catalog: catalog, rt: rt}
}

func (s *unitService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.Unit], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Units.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.Unit]{}, err
	}
	rows = query.Filter(rows, func(u model.Unit) bool { return u.Status == model.StatusActive })
	return query.Page(rows, params, func(u model.Unit) []string { return []string{u.Name, u.Code} }), nil
}

func (s *unitService) All(ctx context.Context) ([]model.Unit, error) {
	ctx = s.rt.wait(ctx, latency.Read)
	return s.catalog.Units.FindAll(ctx)
}

func (s *unitService) Get(ctx context.Context, id int64) (*model.Unit, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	u, err := s.catalog.Units.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityUnit, id)
	}
	return u, nil
}

func (s *unitService) Create(ctx context.Context, req *model.Unit) (*model.Unit, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	req.ID = 0
	req.Stamp(s.rt.now())
	if err := s.catalog.Units.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityUnit, req.ID, req.Name)
	return req, nil
}

func (s *unitService) Update(ctx context.Context, id int64, req *model.Unit) (*model.Unit, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	existing, err := s.catalog.Units.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityUnit, id)
	}

	req.ID = existing.ID
	req.CreateTime = existing.CreateTime
	req.Touch(s.rt.now())
	if err := s.catalog.Units.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entityUnit, req.ID, req.Name)
	return req, nil
}

// Delete refuses units a product uses as primary or auxiliary unit
func (s *unitService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	defer s.catalog.lock()()

	existing, err := s.catalog.Units.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityUnit, id)
	}

	products, err := s.catalog.Products.CountByUnit(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return &GuardError{Entity: entityUnit, ID: id,
			Reason: fmt.Sprintf("unit '%s' is used by %d products and cannot be deleted", existing.Name, products)}
	}

	if err := s.catalog.Units.Delete(ctx, id); err != nil {
		return notFound(err, entityUnit, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityUnit, id, existing.Name)
	return nil
}
