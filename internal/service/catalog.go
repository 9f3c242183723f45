package service

import (
	"context"
	"sync"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/repository"

	"github.com/pkg/errors"
)

// ReferenceLookup resolves the display names that products and locations
// keep a copy of. A missing reference resolves to "".
type ReferenceLookup interface {
	CategoryName(ctx context.Context, id int64) (string, error)
	UnitName(ctx context.Context, id int64) (string, error)
	WarehouseName(ctx context.Context, id int64) (string, error)
	LocationName(ctx context.Context, id int64) (string, error)
}

// Catalog groups the reference tables and the products pointing at them.
// Its lock is held by every write to any of them, so a delete guard and the
// delete it protects see the same rows.
type Catalog struct {
	mu         sync.Mutex
	Categories repository.CategoryRepository
	Units      repository.UnitRepository
	Warehouses repository.WarehouseRepository
	Locations  repository.LocationRepository
	Products   repository.ProductRepository
}

var _ ReferenceLookup = (*Catalog)(nil)

func NewCatalog(
	categories repository.CategoryRepository,
	units repository.UnitRepository,
	warehouses repository.WarehouseRepository,
	locations repository.LocationRepository,
	products repository.ProductRepository,
) *Catalog {
	return &Catalog{
		Categories: categories,
		Units:      units,
		Warehouses: warehouses,
		Locations:  locations,
		Products:   products,
	}
}

func (c *Catalog) lock() func() {
	c.mu.Lock()
	return c.mu.Unlock
}

func (c *Catalog) CategoryName(ctx context.Context, id int64) (string, error) {
	return nameOf(ctx, id, c.Categories.FindByID, func(r *model.Category) string { return r.Name })
}

func (c *Catalog) UnitName(ctx context.Context, id int64) (string, error) {
	return nameOf(ctx, id, c.Units.FindByID, func(r *model.Unit) string { return r.Name })
}

func (c *Catalog) WarehouseName(ctx context.Context, id int64) (string, error) {
	return nameOf(ctx, id, c.Warehouses.FindByID, func(r *model.Warehouse) string { return r.Name })
}

func (c *Catalog) LocationName(ctx context.Context, id int64) (string, error) {
	return nameOf(ctx, id, c.Locations.FindByID, func(r *model.WarehouseLocation) string { return r.Name })
}

func nameOf[T any](ctx context.Context, id int64, find func(context.Context, int64) (*T, error), name func(*T) string) (string, error) {
	if id == 0 {
		return "", nil
	}
	row, err := find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name(row), nil
}

// resolveProductNames copies the current names of every reference of p
func resolveProductNames(ctx context.Context, refs ReferenceLookup, p *model.Product) error {
	var err error
	if p.CategoryName, err = refs.CategoryName(ctx, p.CategoryID); err != nil {
		return err
	}
	if p.UnitName, err = refs.UnitName(ctx, p.UnitID); err != nil {
		return err
	}
	if p.AuxiliaryUnitName, err = refs.UnitName(ctx, p.AuxiliaryUnitID); err != nil {
		return err
	}
	if p.DefaultWarehouseName, err = refs.WarehouseName(ctx, p.DefaultWarehouseID); err != nil {
		return err
	}
	p.DefaultLocationName, err = refs.LocationName(ctx, p.DefaultLocationID)
	return err
}
