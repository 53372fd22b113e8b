package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/miradorhq/mirador/internal/department/domain"
	"github.com/miradorhq/mirador/internal/department/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Department{}))

	return New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide()})
}

func TestCreate_AssignsID(t *testing.T) {
	svc := newService(t)

	department, err := svc.Create(context.Background(), domain.CreateDepartmentRequest{Floors: 3})
	require.NoError(t, err)
	assert.NotZero(t, department.ID)
	assert.Equal(t, 3, department.Floors)
}

func TestCreate_RejectsNonPositiveFloors(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), domain.CreateDepartmentRequest{Floors: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidFloors)

	_, err = svc.Create(context.Background(), domain.CreateDepartmentRequest{Floors: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidFloors)
}

func TestList_OrderedByID(t *testing.T) {
	svc := newService(t)

	for floors := 1; floors <= 3; floors++ {
		_, err := svc.Create(context.Background(), domain.CreateDepartmentRequest{Floors: floors})
		require.NoError(t, err)
	}

	departments, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 3)
	for i := 1; i < len(departments); i++ {
		assert.Greater(t, departments[i].ID, departments[i-1].ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
