package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type SalesRepository interface {
	FindAll(ctx context.Context) ([]model.SalesOrder, error)
	FindByID(ctx context.Context, id string) (*model.SalesOrder, error)
	Create(ctx context.Context, order *model.SalesOrder) error
	Update(ctx context.Context, order *model.SalesOrder) error
	CountByStatus(ctx context.Context, status model.SalesStatus) (int64, error)
}

type salesRepo struct {
	table[model.SalesOrder, string]
}

func NewSalesRepo(db *gorm.DB) SalesRepository {
	return &salesRepo{newTable[model.SalesOrder, string](db, "sales order", "position ASC")}
}

// Create appends the new order to the end of the list
func (r *salesRepo) Create(ctx context.Context, order *model.SalesOrder) error {
	pos, err := r.tailPosition(ctx)
	if err != nil {
		return err
	}
	order.Position = pos
	return r.table.Create(ctx, order)
}

func (r *salesRepo) CountByStatus(ctx context.Context, status model.SalesStatus) (int64, error) {
	return r.countWhere(ctx, "status = ?", status)
}
