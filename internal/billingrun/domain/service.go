package domain

import (
	"context"
	"errors"
)

// GenerateRequest asks for one charge per registered department for a period.
type GenerateRequest struct {
	Year  int
	Month int
}

type Service interface {
	// GenerateForPeriod creates charges for every department in a single
	// transaction and returns how many were created. It refuses to run
	// twice for the same period.
	GenerateForPeriod(context.Context, GenerateRequest) (int, error)
}

var (
	ErrAlreadyGenerated = errors.New("period_already_generated")
	ErrNoDepartments    = errors.New("no_departments")
)
