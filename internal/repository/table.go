package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row has the requested id
var ErrNotFound = errors.New("record not found")

// table implements the access every entity table shares. K is the primary key type.
type table[T any, K comparable] struct {
	db    *gorm.DB
	name  string
	order string
}

func newTable[T any, K comparable](db *gorm.DB, name, order string) table[T, K] {
	return table[T, K]{db: db, name: name, order: order}
}

// FindAll returns every row in list order
func (t table[T, K]) FindAll(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := t.db.WithContext(ctx).Order(t.order).Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", t.name)
	}
	return rows, nil
}

func (t table[T, K]) FindByID(ctx context.Context, id K) (*T, error) {
	var row T
	err := t.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find %s %v", t.name, id)
	}
	return &row, nil
}

func (t table[T, K]) Create(ctx context.Context, row *T) error {
	return errors.Wrapf(t.db.WithContext(ctx).Create(row).Error, "create %s", t.name)
}

// Update writes every column of row, zero values included
func (t table[T, K]) Update(ctx context.Context, row *T) error {
	return errors.Wrapf(t.db.WithContext(ctx).Save(row).Error, "update %s", t.name)
}

func (t table[T, K]) Delete(ctx context.Context, id K) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s %v", t.name, id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t table[T, K]) Count(ctx context.Context) (int64, error) {
	return t.countWhere(ctx, "1 = 1")
}

func (t table[T, K]) countWhere(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&n).Error; err != nil {
		return 0, errors.Wrapf(err, "count %s", t.name)
	}
	return n, nil
}

// headPosition returns a position that sorts before every existing row
func (t table[T, K]) headPosition(ctx context.Context) (int64, error) {
	var pos int64
	err := t.db.WithContext(ctx).Model(new(T)).Select("COALESCE(MIN(position), 0) - 1").Scan(&pos).Error
	return pos, errors.Wrapf(err, "head position of %s", t.name)
}

// tailPosition returns a position that sorts after every existing row
func (t table[T, K]) tailPosition(ctx context.Context) (int64, error) {
	var pos int64
	err := t.db.WithContext(ctx).Model(new(T)).Select("COALESCE(MAX(position), 0) + 1").Scan(&pos).Error
	return pos, errors.Wrapf(err, "tail position of %s", t.name)
}
