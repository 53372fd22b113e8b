package domain

import (
	"context"
	"errors"
)

type CreateDepartmentRequest struct {
	Floors int
}

type Service interface {
	Create(context.Context, CreateDepartmentRequest) (Department, error)
	List(context.Context) ([]Department, error)
	GetByID(context.Context, int64) (Department, error)
}

var (
	ErrInvalidFloors = errors.New("invalid_floors")
	ErrNotFound      = errors.New("department_not_found")
)
