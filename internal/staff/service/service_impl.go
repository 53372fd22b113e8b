package service

import (
	"context"
	"strings"

	"github.com/miradorhq/mirador/internal/staff/domain"
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
		log:  p.Log.Named("staff.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateStaffRequest) (domain.Staff, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	role := strings.TrimSpace(req.Role)
	if firstName == "" || lastName == "" || role == "" {
		return domain.Staff{}, domain.ErrInvalidFields
	}

	staff := domain.Staff{
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}
	if err := s.repo.Insert(ctx, s.db, &staff); err != nil {
		return domain.Staff{}, err
	}

	return staff, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Staff, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	staff := make([]domain.Staff, 0, len(items))
	for _, item := range items {
		staff = append(staff, *item)
	}
	return staff, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Staff, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Staff{}, err
	}
	if item == nil {
		return domain.Staff{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateStaffRequest) (domain.Staff, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Staff{}, err
	}
	if item == nil {
		return domain.Staff{}, domain.ErrNotFound
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return domain.Staff{}, domain.ErrInvalidFields
		}
		item.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return domain.Staff{}, domain.ErrInvalidFields
		}
		item.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		if strings.TrimSpace(*req.Role) == "" {
			return domain.Staff{}, domain.ErrInvalidFields
		}
		item.Role = strings.TrimSpace(*req.Role)
	}

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Staff{}, err
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
