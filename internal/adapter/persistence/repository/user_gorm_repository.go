package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	rec := toUserRecord(u)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.User{}, translateError(err)
	}
	return fromUserRecord(rec), nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint64) (entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) first(ctx context.Context, query string, arg any) (entities.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return fromUserRecord(rec), nil
}
