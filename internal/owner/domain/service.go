package domain

import (
	"context"
	"errors"
)

type CreateOwnerRequest struct {
	FirstName    string
	LastName     string
	DepartmentID int64
}

// UpdateOwnerRequest carries partial updates; nil fields keep current values.
type UpdateOwnerRequest struct {
	FirstName    *string
	LastName     *string
	DepartmentID *int64
}

type Service interface {
	Create(context.Context, CreateOwnerRequest) (Owner, error)
	List(context.Context) ([]Owner, error)
	GetByID(context.Context, int64) (Owner, error)
	Update(context.Context, int64, UpdateOwnerRequest) (Owner, error)
	Delete(context.Context, int64) error
}

var (
	ErrInvalidName = errors.New("invalid_owner_name")
	ErrNotFound    = errors.New("owner_not_found")
)
