package repository

import (
	"context"

	"github.com/miradorhq/mirador/internal/delinquency/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// FindUnpaidResidents inner joins on purpose: a department without tenants
// has no resident to dun, so its unpaid charges are left out of the report.
func (r *repo) FindUnpaidResidents(ctx context.Context, db *gorm.DB) ([]domain.UnpaidRow, error) {
	var rows []domain.UnpaidRow
	err := db.WithContext(ctx).Raw(`
		SELECT c.department_id, d.floors, t.first_name, t.last_name, c.paid
		FROM charges c
		JOIN departments d ON d.id = c.department_id
		JOIN tenants t ON t.department_id = c.department_id
		WHERE c.paid = ?
		ORDER BY c.year, c.month, c.department_id, t.id`, "NO").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
