package domain

import (
	"context"
	"errors"
)

type CreateTenantRequest struct {
	FirstName    string
	LastName     string
	DepartmentID int64
}

// UpdateTenantRequest carries partial updates; nil fields keep current values.
type UpdateTenantRequest struct {
	FirstName    *string
	LastName     *string
	DepartmentID *int64
}

type Service interface {
	Create(context.Context, CreateTenantRequest) (Tenant, error)
	List(context.Context) ([]Tenant, error)
	GetByID(context.Context, int64) (Tenant, error)
	Update(context.Context, int64, UpdateTenantRequest) (Tenant, error)
	Delete(context.Context, int64) error
}

var (
	ErrInvalidName = errors.New("invalid_tenant_name")
	ErrNotFound    = errors.New("tenant_not_found")
)
