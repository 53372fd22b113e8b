package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/miradorhq/mirador/internal/auth"
	"github.com/miradorhq/mirador/internal/billingrun"
	billingrundomain "github.com/miradorhq/mirador/internal/billingrun/domain"
	"github.com/miradorhq/mirador/internal/charge"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/config"
	"github.com/miradorhq/mirador/internal/delinquency"
	delinquencydomain "github.com/miradorhq/mirador/internal/delinquency/domain"
	"github.com/miradorhq/mirador/internal/department"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	"github.com/miradorhq/mirador/internal/observability"
	obslogger "github.com/miradorhq/mirador/internal/observability/logger"
	obstracing "github.com/miradorhq/mirador/internal/observability/tracing"
	"github.com/miradorhq/mirador/internal/owner"
	ownerdomain "github.com/miradorhq/mirador/internal/owner/domain"
	"github.com/miradorhq/mirador/internal/staff"
	staffdomain "github.com/miradorhq/mirador/internal/staff/domain"
	"github.com/miradorhq/mirador/internal/tenant"
	tenantdomain "github.com/miradorhq/mirador/internal/tenant/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	department.Module,
	owner.Module,
	tenant.Module,
	staff.Module,
	charge.Module,
	billingrun.Module,
	delinquency.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server started", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	db             *gorm.DB
	authn          auth.Authenticator
	departmentSvc  departmentdomain.Service
	ownerSvc       ownerdomain.Service
	tenantSvc      tenantdomain.Service
	staffSvc       staffdomain.Service
	chargeSvc      chargedomain.Service
	generatorSvc   billingrundomain.Service
	delinquencySvc delinquencydomain.Service
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DB             *gorm.DB
	Authn          auth.Authenticator
	DepartmentSvc  departmentdomain.Service
	OwnerSvc       ownerdomain.Service
	TenantSvc      tenantdomain.Service
	StaffSvc       staffdomain.Service
	ChargeSvc      chargedomain.Service
	GeneratorSvc   billingrundomain.Service
	DelinquencySvc delinquencydomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		authn:          p.Authn,
		departmentSvc:  p.DepartmentSvc,
		ownerSvc:       p.OwnerSvc,
		tenantSvc:      p.TenantSvc,
		staffSvc:       p.StaffSvc,
		chargeSvc:      p.ChargeSvc,
		generatorSvc:   p.GeneratorSvc,
		delinquencySvc: p.DelinquencySvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/auth", s.CheckCredentials)

	// Billing runs are triggered by a scheduler with no credentials, so the
	// generation endpoint stays open.
	api.POST("/generar", s.GenerateCharges)

	protected := api.Group("", s.BasicAuthRequired())
	{
		protected.POST("/depto", s.CreateDepartment)
		protected.GET("/depto", s.ListDepartments)
		protected.GET("/depto/:id", s.GetDepartment)

		protected.POST("/owner", s.CreateOwner)
		protected.GET("/owner", s.ListOwners)
		protected.GET("/owner/:id", s.GetOwner)
		protected.PUT("/owner/:id", s.UpdateOwner)
		protected.DELETE("/owner/:id", s.DeleteOwner)

		protected.POST("/tenant", s.CreateTenant)
		protected.GET("/tenant", s.ListTenants)
		protected.GET("/tenant/:id", s.GetTenant)
		protected.PUT("/tenant/:id", s.UpdateTenant)
		protected.DELETE("/tenant/:id", s.DeleteTenant)

		protected.POST("/staff", s.CreateStaff)
		protected.GET("/staff", s.ListStaff)
		protected.GET("/staff/:id", s.GetStaff)
		protected.PUT("/staff/:id", s.UpdateStaff)
		protected.DELETE("/staff/:id", s.DeleteStaff)

		protected.GET("/gastos", s.ListCharges)
		protected.GET("/gastos/:id", s.GetCharge)
		protected.DELETE("/gastos/:id", s.DeleteCharge)

		protected.POST("/pagar", s.PayCharge)
		protected.GET("/informe", s.ListDelinquents)
	}
}
