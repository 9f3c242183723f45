package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type customerRepo struct {
	table[model.Customer, int64]
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{newTable[model.Customer, int64](db, "customer", "position ASC, id ASC")}
}

// Create puts the new customer at the top of the list
func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	pos, err := r.headPosition(ctx)
	if err != nil {
		return err
	}
	customer.Position = pos
	return r.table.Create(ctx, customer)
}
