package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindAll(ctx context.Context) ([]model.PurchaseOrder, error)
	FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error)
	Create(ctx context.Context, order *model.PurchaseOrder) error
	Update(ctx context.Context, order *model.PurchaseOrder) error
	ExistsOrderNo(ctx context.Context, orderNo string) (bool, error)
	CountByStatus(ctx context.Context, status model.PurchaseStatus) (int64, error)
}

type purchaseRepo struct {
	table[model.PurchaseOrder, int64]
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{newTable[model.PurchaseOrder, int64](db, "purchase order", "position ASC, id ASC")}
}

// Create puts the new order at the top of the list
func (r *purchaseRepo) Create(ctx context.Context, order *model.PurchaseOrder) error {
	pos, err := r.headPosition(ctx)
	if err != nil {
		return err
	}
	order.Position = pos
	return r.table.Create(ctx, order)
}

func (r *purchaseRepo) ExistsOrderNo(ctx context.Context, orderNo string) (bool, error) {
	n, err := r.countWhere(ctx, "order_no = ?", orderNo)
	return n > 0, err
}

func (r *purchaseRepo) CountByStatus(ctx context.Context, status model.PurchaseStatus) (int64, error) {
	return r.countWhere(ctx, "status = ?", status)
}
