package service

import (
	"context"

	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/delinquency/domain"
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
		log:     p.Log.Named("delinquency.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) ListDelinquents(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.repo.FindUnpaidResidents(ctx, s.db)
	if err != nil {
		return nil, &chargedomain.StorageError{Op: "list delinquents", Err: err}
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.Record{
			DepartmentID: row.DepartmentID,
			Floors:       row.Floors,
			ResidentName: row.FirstName + " " + row.LastName,
			Paid:         row.Paid,
			Delinquent:   "SI",
		})
	}

	s.metrics.RecordDelinquencyReport(ctx)
	return records, nil
}
