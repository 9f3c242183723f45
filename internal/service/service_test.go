package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-erp-admin/internal/actor"
	"go-erp-admin/internal/fixture"
	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/database"
	"go-erp-admin/pkg/jwt"
	"go-erp-admin/pkg/latency"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local)

// recorder is a Notifier keeping every event it receives
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}
	}
	return r.events[len(r.events)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// env is a full service graph over a fresh fixture store
type env struct {
	db         *gorm.DB
	events     *recorder
	tokens     *jwt.Manager
	catalog    *Catalog
	customers  CustomerService
	products   ProductService
	categories CategoryService
	units      UnitService
	warehouses WarehouseService
	locations  LocationService
	purchases  PurchaseService
	sales      SalesService
	auth       AuthService
	dashboard  DashboardService
	export     ExportService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := fixture.Open(context.Background(), database.Options{})
	require.NoError(t, err)

	e := &env{db: db, events: &recorder{}, tokens: jwt.NewManager("test-secret", time.Hour)}
	rt := Runtime{Latency: latency.None(), Notifier: e.events, Clock: func() time.Time { return testNow }}

	customerRepo := repository.NewCustomerRepo(db)
	productRepo := repository.NewProductRepo(db)
	e.catalog = NewCatalog(
		repository.NewCategoryRepo(db),
		repository.NewUnitRepo(db),
		repository.NewWarehouseRepo(db),
		repository.NewLocationRepo(db),
		productRepo,
	)

	e.customers = NewCustomerService(customerRepo, rt)
	e.products = NewProductService(e.catalog, rt)
	e.categories = NewCategoryService(e.catalog, rt)
	e.units = NewUnitService(e.catalog, rt)
	e.warehouses = NewWarehouseService(e.catalog, rt)
	e.locations = NewLocationService(e.catalog, rt)
	e.purchases = NewPurchaseService(repository.NewPurchaseRepo(db), rt)
	e.sales = NewSalesService(repository.NewSalesRepo(db), customerRepo, productRepo, rt)
	e.auth = NewAuthService(repository.NewUserRepo(db), e.tokens, "1234", rt)
	e.dashboard = NewDashboardService(repository.NewDashboardRepo(db), rt)
	e.export = NewExportService(e.customers, e.products, e.purchases, e.sales)
	return e
}

// as returns a context acting for the fixture admin
func as(name string) context.Context {
	return actor.WithActor(context.Background(), actor.Actor{ID: 1, Name: name})
}
