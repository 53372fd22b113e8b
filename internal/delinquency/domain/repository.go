package domain

import (
	"context"

	"gorm.io/gorm"
)

// UnpaidRow is a raw join row of an unpaid charge with one tenant of its
// department.
type UnpaidRow struct {
	DepartmentID int64
	Floors       int
	FirstName    string
	LastName     string
	Paid         string
}

type Repository interface {
	FindUnpaidResidents(ctx context.Context, db *gorm.DB) ([]UnpaidRow, error)
}
