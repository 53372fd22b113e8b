package domain

import "context"

// PayRequest identifies a charge by department and period. Amount must match
// the charge's amount exactly; a zero in any field is treated as missing.
type PayRequest struct {
	DepartmentID int64
	Year         int
	Month        int
	Amount       int64
}

type Service interface {
	Pay(context.Context, PayRequest) (Charge, error)
	List(context.Context) ([]Charge, error)
	GetByID(context.Context, int64) (Charge, error)
	Delete(context.Context, int64) error
}
