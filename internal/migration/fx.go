package migration

import (
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/config"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	ownerdomain "github.com/miradorhq/mirador/internal/owner/domain"
	staffdomain "github.com/miradorhq/mirador/internal/staff/domain"
	tenantdomain "github.com/miradorhq/mirador/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		}

		// sqlite and mysql deployments sync the schema from the models.
		if err := conn.AutoMigrate(
			&departmentdomain.Department{},
			&ownerdomain.Owner{},
			&tenantdomain.Tenant{},
			&staffdomain.Staff{},
			&chargedomain.Charge{},
		); err != nil {
			return err
		}
		log.Info("schema synced", zap.String("driver", cfg.DBType))
		return nil
	}),
)
