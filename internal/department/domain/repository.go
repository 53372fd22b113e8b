package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, department *Department) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Department, error)
	List(ctx context.Context, db *gorm.DB) ([]*Department, error)
}
