// Package fixture builds a fresh record store: it opens the database,
// migrates every table and seeds the records of the embedded fixtures.yaml.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"go-erp-admin/internal/model"
	"go-erp-admin/pkg/database"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedTime stamps seeded records that carry no createTime of their own
const SeedTime = "2024-01-01 10:00:00"

//go:embed fixtures.yaml
var document []byte

// UserSeed is a fixture user with its password in plain text
type UserSeed struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// Set is the full seed record set
type Set struct {
	Customers      []model.Customer          `json:"customers"`
	Categories     []model.Category          `json:"categories"`
	Units          []model.Unit              `json:"units"`
	Warehouses     []model.Warehouse         `json:"warehouses"`
	Locations      []model.WarehouseLocation `json:"locations"`
	Products       []model.Product           `json:"products"`
	PurchaseOrders []model.PurchaseOrder     `json:"purchaseOrders"`
	SalesOrders    []model.SalesOrder        `json:"salesOrders"`
	Users          []UserSeed                `json:"users"`
}

// Models lists every table of the store
func Models() []interface{} {
	return []interface{}{
		&model.Customer{},
		&model.Category{},
		&model.Unit{},
		&model.Warehouse{},
		&model.WarehouseLocation{},
		&model.Product{},
		&model.PurchaseOrder{},
		&model.SalesOrder{},
		&model.User{},
	}
}

// Load decodes the embedded fixture document. The YAML is decoded generically
// and re-read through encoding/json so the models' json tags name the keys.
func Load() (*Set, error) {
	var raw interface{}
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return nil, errors.Wrap(err, "decode fixtures.yaml")
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "convert fixtures")
	}

	var set Set
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, errors.Wrap(err, "read fixtures")
	}
	return &set, nil
}

// Open returns a migrated store seeded with the fixture set
func Open(ctx context.Context, opts database.Options) (*gorm.DB, error) {
	db, err := database.Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return nil, errors.Wrap(err, "migrate store")
	}

	set, err := Load()
	if err != nil {
		return nil, err
	}
	if err := Seed(ctx, db, set); err != nil {
		return nil, err
	}
	return db, nil
}

// Seed inserts set into db in one transaction
func Seed(ctx context.Context, db *gorm.DB, set *Set) error {
	users, err := hashUsers(set.Users)
	if err != nil {
		return err
	}

	for i := range set.Customers {
		stamp(&set.Customers[i].Timestamps)
		set.Customers[i].Position = int64(i + 1)
	}
	for i := range set.Categories {
		stamp(&set.Categories[i].Timestamps)
	}
	for i := range set.Units {
		stamp(&set.Units[i].Timestamps)
	}
	for i := range set.Warehouses {
		stamp(&set.Warehouses[i].Timestamps)
	}
	for i := range set.Locations {
		stamp(&set.Locations[i].Timestamps)
	}
	for i := range set.Products {
		stamp(&set.Products[i].Timestamps)
		if set.Products[i].Images == nil {
			set.Products[i].Images = []string{}
		}
	}
	for i := range set.PurchaseOrders {
		stamp(&set.PurchaseOrders[i].Timestamps)
		set.PurchaseOrders[i].Position = int64(i + 1)
	}
	for i := range set.SalesOrders {
		stamp(&set.SalesOrders[i].Timestamps)
		set.SalesOrders[i].Position = int64(i + 1)
	}

	tables := []struct {
		name string
		rows interface{}
		n    int
	}{
		{"customers", &set.Customers, len(set.Customers)},
		{"categories", &set.Categories, len(set.Categories)},
		{"units", &set.Units, len(set.Units)},
		{"warehouses", &set.Warehouses, len(set.Warehouses)},
		{"locations", &set.Locations, len(set.Locations)},
		{"products", &set.Products, len(set.Products)},
		{"purchase orders", &set.PurchaseOrders, len(set.PurchaseOrders)},
		{"sales orders", &set.SalesOrders, len(set.SalesOrders)},
		{"users", &users, len(users)},
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			if t.n == 0 {
				continue
			}
			if err := tx.Create(t.rows).Error; err != nil {
				return errors.Wrapf(err, "seed %s", t.name)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fields := log.Fields{}
	for _, t := range tables {
		fields[t.name] = t.n
	}
	log.WithFields(fields).Debug("store seeded")
	return nil
}

func stamp(t *model.Timestamps) {
	if t.CreateTime == "" {
		t.CreateTime = SeedTime
	}
	if t.UpdateTime == "" {
		t.UpdateTime = t.CreateTime
	}
}

// bcrypt dominates the cost of a fresh store, so hashes are kept per password
var (
	hashMu sync.Mutex
	hashes = map[string]string{}
)

func hashUsers(seeds []UserSeed) ([]model.User, error) {
	users := make([]model.User, 0, len(seeds))
	for _, s := range seeds {
		u := model.User{
			BaseModel: model.BaseModel{ID: s.ID},
			Username:  s.Username,
			Name:      s.Name,
			Phone:     s.Phone,
			Role:      s.Role,
			Avatar:    s.Avatar,
		}
		stamp(&u.Timestamps)
		if err := setPassword(&u, s.Password); err != nil {
			return nil, errors.Wrapf(err, "hash password of %s", s.Username)
		}
		users = append(users, u)
	}
	return users, nil
}

func setPassword(u *model.User, plain string) error {
	hashMu.Lock()
	defer hashMu.Unlock()

	if hash, ok := hashes[plain]; ok {
		u.Password = hash
		return nil
	}
	if err := u.SetPassword(plain); err != nil {
		return err
	}
	hashes[plain] = u.Password
	return nil
}
