package service

import (
	"context"

	"github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("charge.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Pay settles one charge. Lookup and flag update run in a single transaction
// with the charge row locked, so two concurrent payments of the same charge
// serialize and the loser sees it already paid.
func (s *Service) Pay(ctx context.Context, req domain.PayRequest) (domain.Charge, error) {
	if req.DepartmentID == 0 || req.Year == 0 || req.Month == 0 || req.Amount == 0 {
		return domain.Charge{}, domain.ErrMissingFields
	}

	var paid domain.Charge
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		charge, err := s.repo.FindByPeriodForUpdate(ctx, tx, req.DepartmentID, req.Year, req.Month)
		if err != nil {
			return &domain.StorageError{Op: "find charge", Err: err}
		}
		if charge == nil {
			return domain.ErrNotFound
		}
		if charge.Paid == domain.PaidYes {
			return domain.ErrAlreadyPaid
		}
		if charge.Amount != req.Amount {
			return domain.ErrAmountMismatch
		}

		if err := s.repo.MarkPaid(ctx, tx, charge.ID); err != nil {
			return &domain.StorageError{Op: "mark paid", Err: err}
		}

		charge.Paid = domain.PaidYes
		paid = *charge
		return nil
	})
	if err != nil {
		return domain.Charge{}, err
	}

	s.metrics.RecordPayment(ctx)
	s.log.Info("charge paid",
		zap.Int64("charge_id", paid.ID),
		zap.Int64("department_id", paid.DepartmentID),
		zap.Int("year", paid.Year),
		zap.Int("month", paid.Month),
	)
	return paid, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Charge, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, &domain.StorageError{Op: "list charges", Err: err}
	}

	charges := make([]domain.Charge, 0, len(items))
	for _, item := range items {
		charges = append(charges, *item)
	}
	return charges, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Charge, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Charge{}, &domain.StorageError{Op: "find charge", Err: err}
	}
	if item == nil {
		return domain.Charge{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return &domain.StorageError{Op: "find charge", Err: err}
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return &domain.StorageError{Op: "delete charge", Err: err}
	}
	return nil
}
