package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PaidStatus is the wire value of a charge's payment flag.
type PaidStatus string

const (
	PaidYes PaidStatus = "SI"
	PaidNo  PaidStatus = "NO"
)

// ParsePaidStatus normalizes user input to a PaidStatus.
func ParsePaidStatus(s string) (PaidStatus, error) {
	switch PaidStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case PaidYes:
		return PaidYes, nil
	case PaidNo:
		return PaidNo, nil
	default:
		return "", ErrInvalidPaidStatus
	}
}

// Charge is one month of common expenses owed by one department.
// Exactly one charge may exist per (department, year, month).
type Charge struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	DepartmentID int64      `gorm:"not null;index;uniqueIndex:idx_charges_period" json:"iddepto"`
	Year         int        `gorm:"not null;uniqueIndex:idx_charges_period" json:"anio"`
	Month        int        `gorm:"not null;uniqueIndex:idx_charges_period" json:"mes"`
	IssueDate    time.Time  `gorm:"not null" json:"fechap"`
	Amount       int64      `gorm:"not null" json:"valor"`
	Paid         PaidStatus `gorm:"not null;default:NO" json:"pagado"`
}

func (Charge) TableName() string {
	return "charges"
}

// New builds a validated, unpaid charge. The caller assigns the ID.
func New(departmentID int64, year, month int, issueDate time.Time, amount int64) (Charge, error) {
	if departmentID == 0 {
		return Charge{}, ErrMissingFields
	}
	if year < 1000 || year > 9999 {
		return Charge{}, ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return Charge{}, ErrInvalidMonth
	}
	if amount <= 0 {
		return Charge{}, ErrInvalidAmount
	}

	return Charge{
		DepartmentID: departmentID,
		Year:         year,
		Month:        month,
		IssueDate:    issueDate,
		Amount:       amount,
		Paid:         PaidNo,
	}, nil
}

var (
	ErrMissingFields     = errors.New("missing_fields")
	ErrInvalidYear       = errors.New("invalid_year")
	ErrInvalidMonth      = errors.New("invalid_month")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInvalidPaidStatus = errors.New("invalid_paid_status")
	ErrNotFound          = errors.New("charge_not_found")
	ErrAlreadyPaid       = errors.New("charge_already_paid")
	ErrAmountMismatch    = errors.New("charge_amount_mismatch")
)

// StorageError wraps a database failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("charge storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
