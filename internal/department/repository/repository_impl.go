package repository

import (
	"context"
	"errors"

	"github.com/miradorhq/mirador/internal/department/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, department *domain.Department) error {
	return db.WithContext(ctx).Create(department).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Department, error) {
	var department domain.Department
	err := db.WithContext(ctx).First(&department, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Department, error) {
	var departments []*domain.Department
	if err := db.WithContext(ctx).Order("id").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}
