package domain

import (
	"context"
	"errors"
)

type CreateStaffRequest struct {
	FirstName string
	LastName  string
	Role      string
}

// UpdateStaffRequest carries partial updates; nil fields keep current values.
type UpdateStaffRequest struct {
	FirstName *string
	LastName  *string
	Role      *string
}

type Service interface {
	Create(context.Context, CreateStaffRequest) (Staff, error)
	List(context.Context) ([]Staff, error)
	GetByID(context.Context, int64) (Staff, error)
	Update(context.Context, int64, UpdateStaffRequest) (Staff, error)
	Delete(context.Context, int64) error
}

var (
	ErrInvalidFields = errors.New("invalid_staff_fields")
	ErrNotFound      = errors.New("staff_not_found")
)
