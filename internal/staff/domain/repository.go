package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, staff *Staff) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Staff, error)
	List(ctx context.Context, db *gorm.DB) ([]*Staff, error)
	Update(ctx context.Context, db *gorm.DB, staff *Staff) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
