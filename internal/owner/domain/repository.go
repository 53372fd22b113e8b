package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, owner *Owner) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Owner, error)
	List(ctx context.Context, db *gorm.DB) ([]*Owner, error)
	Update(ctx context.Context, db *gorm.DB, owner *Owner) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
