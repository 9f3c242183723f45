package service

import (
	"context"
	"testing"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/workflow"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseCreate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	got, err := e.purchases.Create(ctx, &model.PurchaseOrderRequest{Supplier: "华硕供应商", Amount: 12000})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "PO-20260315-0001", got.OrderNo)
	assert.Equal(t, model.PurchaseDraft, got.Status)
	assert.Equal(t, "2026-03-15", got.CreateDate)

	next, err := e.purchases.Create(ctx, &model.PurchaseOrderRequest{Supplier: "惠普供应商", Amount: 800})
	require.NoError(t, err)
	assert.Equal(t, "PO-20260315-0002", next.OrderNo)

	page, err := e.purchases.List(ctx, model.ListParams{})
	require.NoError(t, err)
	require.Equal(t, 5, page.Total)
	assert.Equal(t, next.ID, page.List[0].ID, "newest order first")
	assert.Equal(t, got.ID, page.List[1].ID)
	assert.Equal(t, "PO-20231001-001", page.List[2].OrderNo)

	_, err = e.purchases.Create(ctx, &model.PurchaseOrderRequest{Amount: -1})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestPurchaseKeyword(t *testing.T) {
	e := newEnv(t)

	page, err := e.purchases.List(context.Background(), model.ListParams{Keyword: "戴尔"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "PO-20231002-002", page.List[0].OrderNo)

	page, err = e.purchases.List(context.Background(), model.ListParams{Keyword: "20231005"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestPurchaseWorkflow(t *testing.T) {
	e := newEnv(t)
	ctx := as("admin")

	order, err := e.purchases.Create(ctx, &model.PurchaseOrderRequest{Supplier: "华硕供应商", Amount: 12000})
	require.NoError(t, err)

	_, err = e.purchases.Approve(ctx, order.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition, "a draft cannot be approved")

	submitted, err := e.purchases.Submit(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchasePending, submitted.Status)
	assert.Equal(t, ActionSubmitted, e.events.last().Action)

	approved, err := e.purchases.Approve(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseApproved, approved.Status)
	assert.Equal(t, ActionApproved, e.events.last().Action)

	stored, err := e.purchases.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseApproved, stored.Status)
	assert.Equal(t, order.OrderNo, stored.OrderNo)
}

func TestPurchaseSubmitApprovedIsRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Seed order 1 is approved
	_, err := e.purchases.Submit(ctx, 1)

	var terr *workflow.TransitionError
	require.True(t, errors.As(err, &terr), "got %v", err)
	assert.Equal(t, "approved", terr.From)
	assert.Equal(t, workflow.Submit, terr.Action)

	stored, err := e.purchases.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseApproved, stored.Status, "status stays 2")
}

func TestPurchaseTransitionMissing(t *testing.T) {
	e := newEnv(t)

	_, err := e.purchases.Submit(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = e.purchases.Approve(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, e.events.count())
}

func newSalesOrder() *model.SalesOrder {
	return &model.SalesOrder{
		CustomerID: 2,
		Items: []model.SalesItem{
			{ProductID: 1, Price: 59, Quantity: 10, Total: 1},
			{ProductID: 3, ProductName: "显示器", Price: 1999, Quantity: 2},
		},
		TotalAmount: 5,
	}
}

func TestSalesSaveCreates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	got, err := e.sales.Save(ctx, newSalesOrder())
	require.NoError(t, err)
	assert.Equal(t, "SO-20260315-0001", got.ID)
	assert.Equal(t, model.SalesDraft, got.Status)
	assert.Equal(t, "2026-03-15", got.Date)
	assert.Equal(t, "小米科技", got.CustomerName)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "无线静音鼠标", got.Items[0].ProductName)
	assert.Equal(t, "显示器", got.Items[1].ProductName, "a given name is kept")
	assert.Equal(t, float64(590), got.Items[0].Total)
	assert.Equal(t, float64(3998), got.Items[1].Total)
	assert.Equal(t, float64(4588), got.TotalAmount)

	page, err := e.sales.List(ctx, model.ListParams{})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	assert.Equal(t, got.ID, page.List[1].ID, "sales orders are appended")

	stored, err := e.sales.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Items, stored.Items)
}

func TestSalesSaveUpdates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	req := newSalesOrder()
	req.ID = "SO-20231027-001"
	req.Status = model.SalesDraft
	got, err := e.sales.Save(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, model.SalesApproved, got.Status, "save never moves the workflow")
	assert.Equal(t, "2023-10-27", got.Date)
	assert.Equal(t, float64(4588), got.TotalAmount)

	page, err := e.sales.List(ctx, model.ListParams{})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Len(t, page.List[0].Items, 2)
}

func TestSalesSaveUnknownID(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	req := newSalesOrder()
	req.ID = "SO-19990101-0001"
	_, err := e.sales.Save(ctx, req)
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := e.sales.List(ctx, model.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestSalesValidation(t *testing.T) {
	e := newEnv(t)

	cases := map[string]func(o *model.SalesOrder){
		"no items":      func(o *model.SalesOrder) { o.Items = nil },
		"zero quantity": func(o *model.SalesOrder) { o.Items[0].Quantity = 0 },
		"no customer":   func(o *model.SalesOrder) { o.CustomerID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := newSalesOrder()
			mutate(o)
			_, err := e.sales.Save(context.Background(), o)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "got %v", err)
		})
	}
}

func TestSalesSubmit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	order, err := e.sales.Save(ctx, newSalesOrder())
	require.NoError(t, err)

	submitted, err := e.sales.Submit(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SalesPending, submitted.Status)

	_, err = e.sales.Submit(ctx, order.ID)
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition)

	_, err = e.sales.Submit(ctx, "SO-20231027-001")
	assert.ErrorIs(t, err, workflow.ErrInvalidTransition, "approved orders cannot be resubmitted")

	_, err = e.sales.Submit(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSalesKeyword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.sales.Save(ctx, newSalesOrder())
	require.NoError(t, err)

	page, err := e.sales.List(ctx, model.ListParams{Keyword: "华为"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	page, err = e.sales.List(ctx, model.ListParams{Keyword: "SO-2026"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
