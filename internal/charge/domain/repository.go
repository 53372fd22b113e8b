package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, charge *Charge) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Charge, error)
	// FindByPeriodForUpdate reads the charge for one department and period
	// holding a row lock until the surrounding transaction ends.
	FindByPeriodForUpdate(ctx context.Context, db *gorm.DB, departmentID int64, year, month int) (*Charge, error)
	// ExistsForPeriod reports whether any charge exists for the period,
	// regardless of department.
	ExistsForPeriod(ctx context.Context, db *gorm.DB, year, month int) (bool, error)
	MarkPaid(ctx context.Context, db *gorm.DB, id int64) error
	List(ctx context.Context, db *gorm.DB) ([]*Charge, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
