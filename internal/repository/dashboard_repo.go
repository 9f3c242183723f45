package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"gorm.io/gorm"
)

// DashboardStats is the overview shown when the console opens
type DashboardStats struct {
	CustomerCount         int64   `json:"customerCount"`
	ProductCount          int64   `json:"productCount"`
	LowStockCount         int64   `json:"lowStockCount"`
	StockValuation        float64 `json:"stockValuation"`
	PendingPurchaseOrders int64   `json:"pendingPurchaseOrders"`
	PendingSalesOrders    int64   `json:"pendingSalesOrders"`
}

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	db := r.db.WithContext(ctx)

	steps := []struct {
		what string
		run  func() error
	}{
		{"customers", func() error { return db.Model(&model.Customer{}).Count(&stats.CustomerCount).Error }},
		{"products", func() error { return db.Model(&model.Product{}).Count(&stats.ProductCount).Error }},
		{"low stock", func() error {
			return db.Model(&model.Product{}).Where("stock < ?", model.LowStockThreshold).Count(&stats.LowStockCount).Error
		}},
		{"valuation", func() error {
			return db.Model(&model.Product{}).Select("COALESCE(SUM(stock * price), 0)").Scan(&stats.StockValuation).Error
		}},
		{"pending purchases", func() error {
			return db.Model(&model.PurchaseOrder{}).Where("status = ?", model.PurchasePending).Count(&stats.PendingPurchaseOrders).Error
		}},
		{"pending sales", func() error {
			return db.Model(&model.SalesOrder{}).Where("status = ?", model.SalesPending).Count(&stats.PendingSalesOrders).Error
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, wrapf(err, "dashboard %s", step.what)
		}
	}
	return &stats, nil
}
