package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error
	CountChildren(ctx context.Context, id int64) (int64, error)
}

type categoryRepo struct {
	table[model.Category, int64]
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{newTable[model.Category, int64](db, "category", "id ASC")}
}

func (r *categoryRepo) CountChildren(ctx context.Context, id int64) (int64, error) {
	return r.countWhere(ctx, "parent_id = ?", id)
}
