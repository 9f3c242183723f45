package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type WarehouseRepository interface {
	FindAll(ctx context.Context) ([]model.Warehouse, error)
	FindByID(ctx context.Context, id int64) (*model.Warehouse, error)
	Create(ctx context.Context, warehouse *model.Warehouse) error
	Update(ctx context.Context, warehouse *model.Warehouse) error
	Delete(ctx context.Context, id int64) error
}

type warehouseRepo struct {
	table[model.Warehouse, int64]
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{newTable[model.Warehouse, int64](db, "warehouse", "id ASC")}
}

type LocationRepository interface {
	FindAll(ctx context.Context) ([]model.WarehouseLocation, error)
	FindByID(ctx context.Context, id int64) (*model.WarehouseLocation, error)
	Create(ctx context.Context, location *model.WarehouseLocation) error
	Update(ctx context.Context, location *model.WarehouseLocation) error
	Delete(ctx context.Context, id int64) error
	CountByWarehouse(ctx context.Context, warehouseID int64) (int64, error)
	RenameWarehouse(ctx context.Context, warehouseID int64, name string) error
}

type locationRepo struct {
	table[model.WarehouseLocation, int64]
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{newTable[model.WarehouseLocation, int64](db, "location", "id ASC")}
}

func (r *locationRepo) CountByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	return r.countWhere(ctx, "warehouse_id = ?", warehouseID)
}

// RenameWarehouse rewrites the denormalised warehouse name of every location in a warehouse
func (r *locationRepo) RenameWarehouse(ctx context.Context, warehouseID int64, name string) error {
	err := r.db.WithContext(ctx).Model(&model.WarehouseLocation{}).
		Where("warehouse_id = ?", warehouseID).
		Update("warehouse_name", name).Error
	return wrapf(err, "rename warehouse %d on locations", warehouseID)
}
