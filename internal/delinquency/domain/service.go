package domain

import "context"

type Service interface {
	// ListDelinquents reports every unpaid charge joined with the owing
	// department's tenants. Read-only; reporting never flips payment flags.
	ListDelinquents(context.Context) ([]Record, error)
}
