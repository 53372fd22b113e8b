package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/miradorhq/mirador/internal/billingrun/domain"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/clock"
	"github.com/miradorhq/mirador/internal/config"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	"github.com/miradorhq/mirador/internal/observability/metrics"
	pkgdb "github.com/miradorhq/mirador/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Node       *snowflake.Node
	Clock      clock.Clock
	Billing    *config.BillingConfigHolder
	ChargeRepo chargedomain.Repository
	DeptRepo   departmentdomain.Repository
	Metrics    *metrics.Metrics
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	node       *snowflake.Node
	clock      clock.Clock
	billing    *config.BillingConfigHolder
	chargeRepo chargedomain.Repository
	deptRepo   departmentdomain.Repository
	metrics    *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("billingrun.service"),
		node:       p.Node,
		clock:      p.Clock,
		billing:    p.Billing,
		chargeRepo: p.ChargeRepo,
		deptRepo:   p.DeptRepo,
		metrics:    p.Metrics,
	}
}

// GenerateForPeriod runs the whole batch in one transaction so a failed
// insert rolls back every charge of the run.
//
// The duplicate guard is period-wide: once any charge exists for a period the
// run is refused, so a department registered after a run gets no charge for
// it until the next period.
func (s *Service) GenerateForPeriod(ctx context.Context, req domain.GenerateRequest) (int, error) {
	if req.Year == 0 || req.Month == 0 {
		return 0, chargedomain.ErrMissingFields
	}
	if req.Year < 1000 || req.Year > 9999 {
		return 0, chargedomain.ErrInvalidYear
	}
	if req.Month < 1 || req.Month > 12 {
		return 0, chargedomain.ErrInvalidMonth
	}

	amount := s.billing.Get().ChargeAmount
	issueDate := s.clock.Now()

	var created int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.chargeRepo.ExistsForPeriod(ctx, tx, req.Year, req.Month)
		if err != nil {
			return &chargedomain.StorageError{Op: "check period", Err: err}
		}
		if exists {
			return domain.ErrAlreadyGenerated
		}

		departments, err := s.deptRepo.List(ctx, tx)
		if err != nil {
			return &chargedomain.StorageError{Op: "list departments", Err: err}
		}
		if len(departments) == 0 {
			return domain.ErrNoDepartments
		}

		for _, department := range departments {
			charge, err := chargedomain.New(department.ID, req.Year, req.Month, issueDate, amount)
			if err != nil {
				return err
			}
			charge.ID = s.node.Generate().Int64()
			if err := s.chargeRepo.Insert(ctx, tx, &charge); err != nil {
				// Two runs racing past the existence check collide on the
				// (department, year, month) unique index.
				if pkgdb.IsDuplicateKeyErr(err) {
					return domain.ErrAlreadyGenerated
				}
				return &chargedomain.StorageError{Op: "insert charge", Err: err}
			}
		}

		created = len(departments)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.RecordChargesGenerated(ctx, req.Year, req.Month, int64(created))
	s.log.Info("billing run completed",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("charges", created),
		zap.Int64("amount", amount),
	)
	return created, nil
}
