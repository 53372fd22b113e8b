package service

import (
	"context"

	"github.com/miradorhq/mirador/internal/department/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("department.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDepartmentRequest) (domain.Department, error) {
	if req.Floors <= 0 {
		return domain.Department{}, domain.ErrInvalidFloors
	}

	department := domain.Department{Floors: req.Floors}
	if err := s.repo.Insert(ctx, s.db, &department); err != nil {
		return domain.Department{}, err
	}

	return department, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Department, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	departments := make([]domain.Department, 0, len(items))
	for _, item := range items {
		departments = append(departments, *item)
	}
	return departments, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Department, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Department{}, err
	}
	if item == nil {
		return domain.Department{}, domain.ErrNotFound
	}
	return *item, nil
}
