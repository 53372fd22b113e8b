package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	"github.com/miradorhq/mirador/internal/delinquency/domain"
	"github.com/miradorhq/mirador/internal/delinquency/repository"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	tenantdomain "github.com/miradorhq/mirador/internal/tenant/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&departmentdomain.Department{},
		&tenantdomain.Tenant{},
		&chargedomain.Charge{},
	))
	return db
}

func newReporter(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()

	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func seedDepartment(t *testing.T, db *gorm.DB, floors int) departmentdomain.Department {
	t.Helper()

	department := departmentdomain.Department{Floors: floors}
	require.NoError(t, db.Create(&department).Error)
	return department
}

func seedTenant(t *testing.T, db *gorm.DB, departmentID int64, first, last string) {
	t.Helper()

	require.NoError(t, db.Create(&tenantdomain.Tenant{
		FirstName:    first,
		LastName:     last,
		DepartmentID: departmentID,
	}).Error)
}

var chargeSeq int64

func seedCharge(t *testing.T, db *gorm.DB, departmentID int64, year, month int, paid chargedomain.PaidStatus) {
	t.Helper()

	chargeSeq++
	require.NoError(t, db.Create(&chargedomain.Charge{
		ID:           time.Now().UnixNano() + chargeSeq,
		DepartmentID: departmentID,
		Year:         year,
		Month:        month,
		IssueDate:    time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		Amount:       50000,
		Paid:         paid,
	}).Error)
}

func TestListDelinquents_OnlyUnpaidCharges(t *testing.T) {
	db := newTestDB(t)
	svc := newReporter(t, db)

	owing := seedDepartment(t, db, 3)
	settled := seedDepartment(t, db, 5)
	seedTenant(t, db, owing.ID, "Maria", "Soto")
	seedTenant(t, db, settled.ID, "Pedro", "Rojas")
	seedCharge(t, db, owing.ID, 2025, 6, chargedomain.PaidNo)
	seedCharge(t, db, settled.ID, 2025, 6, chargedomain.PaidYes)

	records, err := svc.ListDelinquents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, domain.Record{
		DepartmentID: owing.ID,
		Floors:       3,
		ResidentName: "Maria Soto",
		Paid:         "NO",
		Delinquent:   "SI",
	}, records[0])
}

func TestListDelinquents_DepartmentWithoutTenantsDropped(t *testing.T) {
	db := newTestDB(t)
	svc := newReporter(t, db)

	empty := seedDepartment(t, db, 2)
	seedCharge(t, db, empty.ID, 2025, 6, chargedomain.PaidNo)

	records, err := svc.ListDelinquents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListDelinquents_OneLinePerTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newReporter(t, db)

	shared := seedDepartment(t, db, 4)
	seedTenant(t, db, shared.ID, "Ana", "Diaz")
	seedTenant(t, db, shared.ID, "Luis", "Diaz")
	seedCharge(t, db, shared.ID, 2025, 6, chargedomain.PaidNo)

	records, err := svc.ListDelinquents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana Diaz", records[0].ResidentName)
	assert.Equal(t, "Luis Diaz", records[1].ResidentName)
}

func TestListDelinquents_ReadOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newReporter(t, db)

	department := seedDepartment(t, db, 1)
	seedTenant(t, db, department.ID, "Jose", "Vera")
	seedCharge(t, db, department.ID, 2025, 6, chargedomain.PaidNo)

	first, err := svc.ListDelinquents(context.Background())
	require.NoError(t, err)
	second, err := svc.ListDelinquents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var unpaid int64
	require.NoError(t, db.Model(&chargedomain.Charge{}).
		Where("paid = ?", chargedomain.PaidNo).Count(&unpaid).Error)
	assert.EqualValues(t, 1, unpaid)
}
