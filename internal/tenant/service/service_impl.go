package service

import (
	"context"
	"strings"

	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	"github.com/miradorhq/mirador/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	DeptRepo departmentdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	deptRepo departmentdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("tenant.service"),
		repo:     p.Repo,
		deptRepo: p.DeptRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTenantRequest) (domain.Tenant, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return domain.Tenant{}, domain.ErrInvalidName
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return domain.Tenant{}, err
	}

	tenant := domain.Tenant{
		FirstName:    firstName,
		LastName:     lastName,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Insert(ctx, s.db, &tenant); err != nil {
		return domain.Tenant{}, err
	}

	return tenant, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Tenant, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	tenants := make([]domain.Tenant, 0, len(items))
	for _, item := range items {
		tenants = append(tenants, *item)
	}
	return tenants, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Tenant, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tenant{}, err
	}
	if item == nil {
		return domain.Tenant{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateTenantRequest) (domain.Tenant, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tenant{}, err
	}
	if item == nil {
		return domain.Tenant{}, domain.ErrNotFound
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return domain.Tenant{}, domain.ErrInvalidName
		}
		item.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return domain.Tenant{}, domain.ErrInvalidName
		}
		item.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DepartmentID != nil {
		if err := s.ensureDepartment(ctx, *req.DepartmentID); err != nil {
			return domain.Tenant{}, err
		}
		item.DepartmentID = *req.DepartmentID
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Tenant{}, err
	}
	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) ensureDepartment(ctx context.Context, departmentID int64) error {
	department, err := s.deptRepo.FindByID(ctx, s.db, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return departmentdomain.ErrNotFound
	}
	return nil
}
