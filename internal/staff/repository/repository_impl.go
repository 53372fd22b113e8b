package repository

import (
	"context"
	"errors"

	"github.com/miradorhq/mirador/internal/staff/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, staff *domain.Staff) error {
	return db.WithContext(ctx).Create(staff).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Staff, error) {
	var staff domain.Staff
	err := db.WithContext(ctx).First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Staff, error) {
	var staff []*domain.Staff
	if err := db.WithContext(ctx).Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, staff *domain.Staff) error {
	return db.WithContext(ctx).Save(staff).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Staff{}, "id = ?", id).Error
}
