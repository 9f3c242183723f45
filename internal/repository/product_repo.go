package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// Reference counts backing the delete guards of the catalog tables
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByUnit(ctx context.Context, unitID int64) (int64, error)
	CountByWarehouse(ctx context.Context, warehouseID int64) (int64, error)
	CountByLocation(ctx context.Context, locationID int64) (int64, error)
}

type productRepo struct {
	table[model.Product, int64]
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{newTable[model.Product, int64](db, "product", "id ASC")}
}

func (r *productRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return r.countWhere(ctx, "category_id = ?", categoryID)
}

// CountByUnit counts products using the unit as primary or auxiliary unit
func (r *productRepo) CountByUnit(ctx context.Context, unitID int64) (int64, error) {
	return r.countWhere(ctx, "unit_id = ? OR auxiliary_unit_id = ?", unitID, unitID)
}

func (r *productRepo) CountByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	return r.countWhere(ctx, "default_warehouse_id = ?", warehouseID)
}

func (r *productRepo) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	return r.countWhere(ctx, "default_location_id = ?", locationID)
}

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
