package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-erp-admin/internal/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(name string) *model.Customer {
	return &model.Customer{
		Name:    name,
		Contact: "李经理",
		Phone:   "13700000000",
		Email:   "li@example.com",
		Address: "上海市浦东新区",
		Level:   model.LevelB,
	}
}

func TestCustomerCreate(t *testing.T) {
	e := newEnv(t)
	ctx := as("admin")

	got, err := e.customers.Create(ctx, newCustomer("比亚迪汽车"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "2026-03-15 09:30:00", got.CreateTime)
	assert.Equal(t, got.CreateTime, got.UpdateTime)

	t.Run("listed exactly once, at the top", func(t *testing.T) {
		page, err := e.customers.List(ctx, model.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, got.ID, page.List[0].ID)

		n := 0
		for _, c := range page.List {
			if c.ID == got.ID {
				n++
			}
		}
		assert.Equal(t, 1, n)
	})

	t.Run("get returns the input fields", func(t *testing.T) {
		stored, err := e.customers.Get(ctx, got.ID)
		require.NoError(t, err)
		want := newCustomer("比亚迪汽车")
		assert.Equal(t, want.Name, stored.Name)
		assert.Equal(t, want.Contact, stored.Contact)
		assert.Equal(t, want.Phone, stored.Phone)
		assert.Equal(t, want.Email, stored.Email)
		assert.Equal(t, want.Address, stored.Address)
		assert.Equal(t, want.Level, stored.Level)
	})

	t.Run("publishes the change", func(t *testing.T) {
		ev := e.events.last()
		assert.Equal(t, EventDataChange, ev.Type)
		assert.Equal(t, ActionCreated, ev.Action)
		assert.Equal(t, entityCustomer, ev.Entity)
		assert.Equal(t, got.ID, ev.ID)
		assert.Equal(t, "admin", ev.User.Name)
		assert.Equal(t, "admin created customer '比亚迪汽车'", ev.Message)
	})
}

func TestCustomerCreateIgnoresClientID(t *testing.T) {
	e := newEnv(t)

	c := newCustomer("ACME")
	c.ID = 1
	got, err := e.customers.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)

	first, err := e.customers.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "华为技术有限公司", first.Name)
}

func TestCustomerValidation(t *testing.T) {
	e := newEnv(t)

	cases := map[string]func(c *model.Customer){
		"missing name": func(c *model.Customer) { c.Name = "" },
		"bad level":    func(c *model.Customer) { c.Level = "D" },
		"bad phone":    func(c *model.Customer) { c.Phone = "12345" },
		"bad email":    func(c *model.Customer) { c.Email = "not-an-email" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := newCustomer("ACME")
			mutate(c)
			_, err := e.customers.Create(context.Background(), c)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
		})
	}

	page, err := e.customers.List(context.Background(), model.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Zero(t, e.events.count())
}

func TestCustomerUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	req := newCustomer("华为")
	req.Level = model.LevelA
	got, err := e.customers.Update(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "2024-01-01 10:00:00", got.CreateTime)
	assert.Equal(t, "2026-03-15 09:30:00", got.UpdateTime)

	page, err := e.customers.List(ctx, model.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.List, 3)
	assert.Equal(t, "华为", page.List[0].Name, "update keeps the place in the list")
	assert.Equal(t, "李经理", page.List[0].Contact)
}

func TestCustomerUpdateMissing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	before, err := e.customers.List(ctx, model.ListParams{})
	require.NoError(t, err)

	_, err = e.customers.Update(ctx, 99, newCustomer("ghost"))
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := e.customers.List(ctx, model.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCustomerDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.customers.Delete(ctx, 3))
	assert.ErrorIs(t, e.customers.Delete(ctx, 3), ErrNotFound)

	_, err := e.customers.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := e.customers.List(ctx, model.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	got, err := e.customers.Create(ctx, newCustomer("ACME"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID, "a deleted id is never handed out again")
}

func TestCustomerKeyword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.customers.Create(ctx, newCustomer("Acme Trading"))
	require.NoError(t, err)

	cases := []struct {
		keyword string
		want    []string
	}{
		{"张", []string{"华为技术有限公司"}},
		{"小米", []string{"小米科技"}},
		{"经理", []string{"Acme Trading", "华为技术有限公司"}},
		{"Acme", []string{"Acme Trading"}},
		{"acme", nil},
		{"", []string{"Acme Trading", "华为技术有限公司", "小米科技", "楼下的便利店"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("keyword %q", tc.keyword), func(t *testing.T) {
			page, err := e.customers.List(ctx, model.ListParams{Keyword: tc.keyword})
			require.NoError(t, err)

			var names []string
			for _, c := range page.List {
				names = append(names, c.Name)
			}
			assert.Equal(t, tc.want, names)
			assert.Equal(t, len(tc.want), page.Total)
		})
	}
}

func TestCustomerPagination(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	page, err := e.customers.List(ctx, model.ListParams{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, "楼下的便利店", page.List[0].Name)

	page, err = e.customers.List(ctx, model.ListParams{Page: 5, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.NotNil(t, page.List)
	assert.Empty(t, page.List)
}

func TestCustomerOptions(t *testing.T) {
	e := newEnv(t)

	options, err := e.customers.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Option{
		{ID: 1, Name: "华为技术有限公司"},
		{ID: 2, Name: "小米科技"},
		{ID: 3, Name: "楼下的便利店"},
	}, options)
}

func TestCustomerConcurrentCreates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := e.customers.Create(ctx, newCustomer(fmt.Sprintf("客户%d", i)))
			if assert.NoError(t, err) {
				ids <- c.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	page, err := e.customers.List(ctx, model.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, n+3, page.Total)
}
