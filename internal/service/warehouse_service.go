package service

import (
	"context"
	"fmt"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/query"
	"go-erp-admin/pkg/latency"
)

const (
	entityWarehouse = "warehouse"
	entityLocation  = "location"
)

type WarehouseService interface {
	// List returns the active warehouses
	List(ctx context.Context, params model.ListParams) (model.PageResult[model.Warehouse], error)
	All(ctx context.Context) ([]model.Warehouse, error)
	Get(ctx context.Context, id int64) (*model.Warehouse, error)
	Create(ctx context.Context, req *model.Warehouse) (*model.Warehouse, error)
	// Update also rewrites the warehouse name copied onto its locations
	Update(ctx context.Context, id int64, req *model.Warehouse) (*model.Warehouse, error)
	Delete(ctx context.Context, id int64) error
}

type warehouseService struct {
	catalog *Catalog
	rt      Runtime
}

func NewWarehouseService(catalog *Catalog, rt Runtime) WarehouseService {
	return &warehouseService{catalog: catalog, rt: rt}
}

func (s *warehouseService) List(ctx context.Context, params model.ListParams) (model.PageResult[model.Warehouse], error) {
	ctx = s.rt.wait(ctx, latency.Read)

	rows, err := s.catalog.Warehouses.FindAll(ctx)
	if err != nil {
		return model.PageResult[model.Warehouse]{}, err
	}
	rows = query.Filter(rows, func(w model.Warehouse) bool { return w.Status == model.StatusActive })
	return query.Page(rows, params, func(w model.Warehouse) []string { return []string{w.Name, w.Location} }), nil
}

func (s *warehouseService) All(ctx context.Context) ([]model.Warehouse, error) {
	ctx = s.rt.wait(ctx, latency.Read)
	return s.catalog.Warehouses.FindAll(ctx)
}

func (s *warehouseService) Get(ctx context.Context, id int64) (*model.Warehouse, error) {
	ctx = s.rt.wait(ctx, latency.Read)

	w, err := s.catalog.Warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityWarehouse, id)
	}
	return w, nil
}

func (s *warehouseService) Create(ctx context.Context, req *model.Warehouse) (*model.Warehouse, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	req.ID = 0
	req.Stamp(s.rt.now())
	if err := s.catalog.Warehouses.Create(ctx, req); err != nil {
		return nil, err
	}

	s.rt.publish(ctx, ActionCreated, entityWarehouse, req.ID, req.Name)
	return req, nil
}

func (s *warehouseService) Update(ctx context.Context, id int64, req *model.Warehouse) (*model.Warehouse, error) {
	ctx = s.rt.wait(ctx, latency.Write)
	if err := validate(req); err != nil {
		return nil, err
	}

	defer s.catalog.lock()()

	existing, err := s.catalog.Warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityWarehouse, id)
	}

	req.ID = existing.ID
	req.CreateTime = existing.CreateTime
	req.Touch(s.rt.now())
	if err := s.catalog.Warehouses.Update(ctx, req); err != nil {
		return nil, err
	}
	if req.Name != existing.Name {
		if err := s.catalog.Locations.RenameWarehouse(ctx, id, req.Name); err != nil {
			return nil, err
		}
	}

	s.rt.publish(ctx, ActionUpdated, entityWarehouse, req.ID, req.Name)
	return req, nil
}

// Delete refuses warehouses that still have locations or are a product's default
func (s *warehouseService) Delete(ctx context.Context, id int64) error {
	ctx = s.rt.wait(ctx, latency.Write)

	defer s.catalog.lock()()

	existing, err := s.catalog.Warehouses.FindByID(ctx, id)
	if err != nil {
		return notFound(err, entityWarehouse, id)
	}

	locations, err := s.catalog.Locations.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if locations > 0 {
		return &GuardError{Entity: entityWarehouse, ID: id,
			Reason: fmt.Sprintf("warehouse '%s' has %d locations and cannot be deleted", existing.Name, locations)}
	}

	products, err := s.catalog.Products.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return &GuardError{Entity: entityWarehouse, ID: id,
			Reason: fmt.Sprintf("warehouse '%s' is the default of %d products and cannot be deleted", existing.Name, products)}
	}

	if err := s.catalog.Warehouses.Delete(ctx, id); err != nil {
		return notFound(err, entityWarehouse, id)
	}

	s.rt.publish(ctx, ActionDeleted, entityWarehouse, id, existing.Name)
	return nil
}
