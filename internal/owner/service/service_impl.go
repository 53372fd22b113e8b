package service

import (
	"context"
	"strings"

	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	"github.com/miradorhq/mirador/internal/owner/domain"
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
		log:      p.Log.Named("owner.service"),
		repo:     p.Repo,
		deptRepo: p.DeptRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOwnerRequest) (domain.Owner, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return domain.Owner{}, domain.ErrInvalidName
	}

	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return domain.Owner{}, err
	}

	owner := domain.Owner{
		FirstName:    firstName,
		LastName:     lastName,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Insert(ctx, s.db, &owner); err != nil {
		return domain.Owner{}, err
	}

	return owner, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Owner, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	owners := make([]domain.Owner, 0, len(items))
	for _, item := range items {
		owners = append(owners, *item)
	}
	return owners, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Owner, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Owner{}, err
	}
	if item == nil {
		return domain.Owner{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateOwnerRequest) (domain.Owner, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Owner{}, err
	}
	if item == nil {
		return domain.Owner{}, domain.ErrNotFound
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return domain.Owner{}, domain.ErrInvalidName
		}
		item.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return domain.Owner{}, domain.ErrInvalidName
		}
		item.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DepartmentID != nil {
		if err := s.ensureDepartment(ctx, *req.DepartmentID); err != nil {
			return domain.Owner{}, err
		}
		item.DepartmentID = *req.DepartmentID
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Owner{}, err
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
