package service

import (
	"context"
	"fmt"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/pkg/latency"
)

type LocationService interface {
	// List returns locations of every status, scoped to warehouseID when given
	List(ctx context.Context, params model.ListParams, warehouseID *int64) (model.PageResult[model.WarehouseLocation], error)
	// ByWarehouse returns the active locations of one warehouse
	ByWarehouse(ctx context.Context, warehouseID int64) ([]model.WarehouseLocation, error)
	Get(ctx context.Context, id int64) (*model.WarehouseLocation, error)
	Create(ctx context.Context, req *model.WarehouseLocation) (*model.WarehouseLocation, error)
	Update(ctx context.Context, id int64, req *model.WarehouseLocation) (*model.WarehouseLocation, error)
	Delete(ctx context.Context, id int64) error
}

type locationService struct {
	catalog *Catalog
	rt      Runtime
}

func NewLocationService(catalog *Catalog, rt Runtime) LocationService {
	return &locationService{catalog: catalog, rt: rt}
}

func (s *locationService) List(ctx context.Context, params model.ListParams, warehouseID *int64) (model.PageResult[model.WarehouseLocation], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Locations.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.WarehouseLocation]{}, err
	}
	if warehouseID != nil {
		rows = query.Filter(rows, func(l model.WarehouseLocation) bool { return l.WarehouseID == *warehouseID })
	}
	return query.Page(rows, params, func(l model.WarehouseLocation) []string { return []string{l.Name} }), nil
}

func (s *locationService) ByWarehouse(ctx context.Context, warehouseID int64) ([]model.WarehouseLocation, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Locations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(rows, func(l model.WarehouseLocation) bool {
		return l.WarehouseID == warehouseID && l.Status == model.StatusActive
	}), nil
}

func (s *locationService) Get(ctx context.Context, id int64) (*model.WarehouseLocation, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	l, err := s.catalog.Locations.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityLocation, id)
	}
	return l, nil
}

func (s *locationService) Create(ctx context.Context, req *model.WarehouseLocation) (*model.WarehouseLocation, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	req.ID = 0
	name, err := s.catalog.WarehouseName(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	req.WarehouseName = name
	req.Stamp(s.rt.now())
	if err := s.catalog.Locations.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityLocation, req.ID, req.Name)
	return req, nil
}

func (s *locationService) Update(ctx context.Context, id int64, req *model.WarehouseLocation) (*model.WarehouseLocation, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	existing, err := s.catalog.Locations.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityLocation, id)
	}

	req.ID = existing.ID
	req.CreateTime = existing.CreateTime
	if req.WarehouseName, err = s.catalog.WarehouseName(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	req.Touch(s.rt.now())
	if err := s.catalog.Locations.Update(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionUpdated, entityLocation, req.ID, req.Name)
	return req, nil
}

// Delete refuses locations that are a product's default location
func (s *locationService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	defer s.catalog.lock()()

	existing, err := s.catalog.Locations.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityLocation, id)
	}

	products, err := s.catalog.Products.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return &GuardError{Entity: entityLocation, ID: id,
			Reason: fmt.Sprintf("location '%s' is the default of %d products and cannot be deleted", existing.Name, products)}
	}

	if err := s.catalog.Locations.Delete(ctx, id); err != nil {
		return notFound(err, entityLocation, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityLocation, id, existing.Name)
	return nil
}
