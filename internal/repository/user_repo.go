package repository

import (
	"context"

	"go-erp-admin/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type userRepo struct {
	table[model.User, int64]
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{newTable[model.User, int64](db, "user", "id ASC")}
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findBy(ctx, "username = ?", username)
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.findBy(ctx, "phone = ?", phone)
}

func (r *userRepo) findBy(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where(query, arg).Order("id ASC").Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}
