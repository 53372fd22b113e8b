package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	departmentrepository "github.com/miradorhq/mirador/internal/department/repository"
	"github.com/miradorhq/mirador/internal/owner/domain"
	"github.com/miradorhq/mirador/internal/owner/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&departmentdomain.Department{}, &domain.Owner{}))

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Repo:     repository.Provide(),
		DeptRepo: departmentrepository.Provide(),
	})
	return svc, db
}

func seedDepartment(t *testing.T, db *gorm.DB) departmentdomain.Department {
	t.Helper()

	department := departmentdomain.Department{Floors: 2}
	require.NoError(t, db.Create(&department).Error)
	return department
}

func TestCreate_TrimsNames(t *testing.T) {
	svc, db := newService(t)
	department := seedDepartment(t, db)

	owner, err := svc.Create(context.Background(), domain.CreateOwnerRequest{
		FirstName:    "  Pedro ",
		LastName:     " Rojas ",
		DepartmentID: department.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", owner.FirstName)
	assert.Equal(t, "Rojas", owner.LastName)
}

func TestCreate_RequiresNames(t *testing.T) {
	svc, db := newService(t)
	department := seedDepartment(t, db)

	_, err := svc.Create(context.Background(), domain.CreateOwnerRequest{
		FirstName:    " ",
		LastName:     "Rojas",
		DepartmentID: department.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreate_RequiresExistingDepartment(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), domain.CreateOwnerRequest{
		FirstName:    "Pedro",
		LastName:     "Rojas",
		DepartmentID: 42,
	})
	assert.ErrorIs(t, err, departmentdomain.ErrNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, db := newService(t)
	department := seedDepartment(t, db)

	created, err := svc.Create(context.Background(), domain.CreateOwnerRequest{
		FirstName:    "Pedro",
		LastName:     "Rojas",
		DepartmentID: department.ID,
	})
	require.NoError(t, err)

	newName := "Juan"
	updated, err := svc.Update(context.Background(), created.ID, domain.UpdateOwnerRequest{
		FirstName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan", updated.FirstName)
	assert.Equal(t, "Rojas", updated.LastName)
	assert.Equal(t, department.ID, updated.DepartmentID)
}

func TestUpdate_RejectsUnknownDepartment(t *testing.T) {
	svc, db := newService(t)
	department := seedDepartment(t, db)

	created, err := svc.Create(context.Background(), domain.CreateOwnerRequest{
		FirstName:    "Pedro",
		LastName:     "Rojas",
		DepartmentID: department.ID,
	})
	require.NoError(t, err)

	missing := int64(42)
	_, err = svc.Update(context.Background(), created.ID, domain.UpdateOwnerRequest{
		DepartmentID: &missing,
	})
	assert.ErrorIs(t, err, departmentdomain.ErrNotFound)
}

func TestDelete_UnknownOwner(t *testing.T) {
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.Delete(context.Background(), 7), domain.ErrNotFound)
}
