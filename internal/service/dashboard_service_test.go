package service

import (
	"context"
	"testing"

	"go-erp-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.CustomerCount)
	assert.Equal(t, int64(3), stats.ProductCount)
	assert.Equal(t, int64(0), stats.LowStockCount, "a stock of exactly the threshold is not low")
	assert.Equal(t, float64(40525), stats.StockValuation)
	assert.Equal(t, int64(1), stats.PendingPurchaseOrders)
	assert.Equal(t, int64(0), stats.PendingSalesOrders)
}

func TestDashboardFollowsChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Stock is not editable through the services
	require.NoError(t, e.db.Model(&model.Product{}).Where("id = ?", 3).
		Update("stock", model.LowStockThreshold-1).Error)

	order, err := e.sales.Save(ctx, newSalesOrder())
	require.NoError(t, err)
	_, err = e.sales.Submit(ctx, order.ID)
	require.NoError(t, err)

	_, err = e.purchases.Approve(ctx, 2)
	require.NoError(t, err)

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, float64(7080+13455+9*1999), stats.StockValuation)
	assert.Equal(t, int64(0), stats.PendingPurchaseOrders)
	assert.Equal(t, int64(1), stats.PendingSalesOrders)
}
