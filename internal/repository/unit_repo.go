package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	FindAll(ctx context.Context) ([]model.Unit, error)
	FindByID(ctx context.Context, id int64) (*model.Unit, error)
	Create(ctx context.Context, unit *model.Unit) error
	Update(ctx context.Context, unit *model.Unit) error
	Delete(ctx context.Context, id int64) error
}

type unitRepo struct {
	table[model.Unit, int64]
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{newTable[model.Unit, int64](db, "unit", "id ASC")}
}
