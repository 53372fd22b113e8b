package repository

import (
	"context"
	"errors"

	"github.com/miradorhq/mirador/internal/charge/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, charge *domain.Charge) error {
	return db.WithContext(ctx).Create(charge).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Charge, error) {
	var charge domain.Charge
	err := db.WithContext(ctx).First(&charge, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

func (r *repo) FindByPeriodForUpdate(ctx context.Context, db *gorm.DB, departmentID int64, year, month int) (*domain.Charge, error) {
	var charge domain.Charge
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("department_id = ? AND year = ? AND month = ?", departmentID, year, month).
		First(&charge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

func (r *repo) ExistsForPeriod(ctx context.Context, db *gorm.DB, year, month int) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Charge{}).
		Where("year = ? AND month = ?", year, month).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) MarkPaid(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Model(&domain.Charge{}).
		Where("id = ?", id).
		Update("paid", domain.PaidYes).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Charge, error) {
	var charges []*domain.Charge
	err := db.WithContext(ctx).
		Order("year, month, department_id").
		Find(&charges).Error
	if err != nil {
		return nil, err
	}
	return charges, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Charge{}, "id = ?", id).Error
}
