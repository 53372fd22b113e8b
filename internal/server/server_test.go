package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/miradorhq/mirador/internal/auth"
	billingrunservice "github.com/miradorhq/mirador/internal/billingrun/service"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	chargerepository "github.com/miradorhq/mirador/internal/charge/repository"
	chargeservice "github.com/miradorhq/mirador/internal/charge/service"
	"github.com/miradorhq/mirador/internal/clock"
	"github.com/miradorhq/mirador/internal/config"
	delinquencyrepository "github.com/miradorhq/mirador/internal/delinquency/repository"
	delinquencyservice "github.com/miradorhq/mirador/internal/delinquency/service"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	departmentrepository "github.com/miradorhq/mirador/internal/department/repository"
	departmentservice "github.com/miradorhq/mirador/internal/department/service"
	ownerdomain "github.com/miradorhq/mirador/internal/owner/domain"
	ownerrepository "github.com/miradorhq/mirador/internal/owner/repository"
	ownerservice "github.com/miradorhq/mirador/internal/owner/service"
	staffdomain "github.com/miradorhq/mirador/internal/staff/domain"
	staffrepository "github.com/miradorhq/mirador/internal/staff/repository"
	staffservice "github.com/miradorhq/mirador/internal/staff/service"
	tenantdomain "github.com/miradorhq/mirador/internal/tenant/domain"
	tenantrepository "github.com/miradorhq/mirador/internal/tenant/repository"
	tenantservice "github.com/miradorhq/mirador/internal/tenant/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&departmentdomain.Department{},
		&ownerdomain.Owner{},
		&tenantdomain.Tenant{},
		&staffdomain.Staff{},
		&chargedomain.Charge{},
	))

	log := zap.NewNop()
	cfg := config.Config{AuthUsername: "ADMIN", AuthPassword: "ADMIN"}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	deptRepo := departmentrepository.Provide()
	chargeRepo := chargerepository.Provide()

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin:    engine,
		Cfg:    cfg,
		DB:     db,
		Authn:  auth.New(cfg),
		DepartmentSvc: departmentservice.New(departmentservice.Params{
			DB: db, Log: log, Repo: deptRepo,
		}),
		OwnerSvc: ownerservice.New(ownerservice.Params{
			DB: db, Log: log, Repo: ownerrepository.Provide(), DeptRepo: deptRepo,
		}),
		TenantSvc: tenantservice.New(tenantservice.Params{
			DB: db, Log: log, Repo: tenantrepository.Provide(), DeptRepo: deptRepo,
		}),
		StaffSvc: staffservice.New(staffservice.Params{
			DB: db, Log: log, Repo: staffrepository.Provide(),
		}),
		ChargeSvc: chargeservice.New(chargeservice.Params{
			DB: db, Log: log, Repo: chargeRepo,
		}),
		GeneratorSvc: billingrunservice.New(billingrunservice.Params{
			DB:         db,
			Log:        log,
			Node:       node,
			Clock:      clock.NewFakeClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
			Billing:    config.NewStaticBillingConfigHolder(config.BillingConfig{ChargeAmount: 50000}),
			ChargeRepo: chargeRepo,
			DeptRepo:   deptRepo,
		}),
		DelinquencySvc: delinquencyservice.New(delinquencyservice.Params{
			DB: db, Log: log, Repo: delinquencyrepository.Provide(),
		}),
	})
}

func doRequest(t *testing.T, s *Server, method, path string, body any, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.SetBasicAuth("ADMIN", "ADMIN")
	}

	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

// createdResponse matches the mensaje+id envelope of create/update handlers.
type createdResponse struct {
	Message string `json:"mensaje"`
	ID      int64  `json:"id"`
}

func decodeCreated(t *testing.T, rec *httptest.ResponseRecorder) createdResponse {
	t.Helper()

	var resp createdResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func TestCheckCredentials(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/auth", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Credenciales correctas", message(t, rec))

	rec = doRequest(t, s, http.MethodGet, "/api/auth", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Autenticacion requerida", message(t, rec))
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/depto", "/api/gastos", "/api/informe"} {
		rec := doRequest(t, s, http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestBillingFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/depto", gin.H{"pisos": 3}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	department := decodeCreated(t, rec)
	assert.Equal(t, "Departamento creado", department.Message)
	require.NotZero(t, department.ID)

	rec = doRequest(t, s, http.MethodPost, "/api/tenant", gin.H{
		"nombre": "Maria", "apellido": "Soto", "iddepto": department.ID,
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Arrendatario creado", decodeCreated(t, rec).Message)

	// Generation is open: no credentials attached.
	rec = doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 2025, "mes": 6}, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Gastos comunes generados correctamente", message(t, rec))

	rec = doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 2025, "mes": 6}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ya existe un gasto común para ese año y mes", message(t, rec))

	rec = doRequest(t, s, http.MethodGet, "/api/informe", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Maria Soto", records[0]["Nombre Residente"])
	assert.Equal(t, "SI", records[0]["moroso"])

	rec = doRequest(t, s, http.MethodPost, "/api/pagar", gin.H{
		"iddepto": department.ID, "anio": 2025, "mes": 6, "valor": 49999,
	}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El monto no coincide con el gasto común", message(t, rec))

	rec = doRequest(t, s, http.MethodPost, "/api/pagar", gin.H{
		"iddepto": department.ID, "anio": 2025, "mes": 6, "valor": 50000,
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gasto común pagado correctamente", message(t, rec))

	rec = doRequest(t, s, http.MethodPost, "/api/pagar", gin.H{
		"iddepto": department.ID, "anio": 2025, "mes": 6, "valor": 50000,
	}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El gasto común ya está pagado", message(t, rec))

	rec = doRequest(t, s, http.MethodGet, "/api/informe", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	records = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Empty(t, records)
}

func TestGenerateWithoutDepartments(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 2025, "mes": 6}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No hay departamentos registrados", message(t, rec))
}

func TestGenerateValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 2025}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Todos los campos son requeridos", message(t, rec))

	rec = doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 2025, "mes": 13}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El mes debe estar entre 1 y 12", message(t, rec))

	rec = doRequest(t, s, http.MethodPost, "/api/generar", gin.H{"anio": 99, "mes": 6}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El año debe tener exactamente 4 dígitos", message(t, rec))
}

func TestPayUnknownCharge(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/pagar", gin.H{
		"iddepto": 99, "anio": 2025, "mes": 6, "valor": 50000,
	}, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Gasto común no encontrado", message(t, rec))
}

func TestOwnerCRUD(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/depto", gin.H{"pisos": 2}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	department := decodeCreated(t, rec)

	rec = doRequest(t, s, http.MethodPost, "/api/owner", gin.H{
		"nombre": "Pedro", "apellido": "Rojas", "iddepto": department.ID,
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeCreated(t, rec)
	assert.Equal(t, "Propietario creado", created.Message)

	rec = doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/owner/%d", created.ID), gin.H{
		"nombre": "Juan",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Propietario modificado", decodeCreated(t, rec).Message)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/owner/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var owner ownerdomain.Owner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owner))
	assert.Equal(t, "Juan", owner.FirstName)
	assert.Equal(t, "Rojas", owner.LastName)

	rec = doRequest(t, s, http.MethodDelete, fmt.Sprintf("/api/owner/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/owner/%d", created.ID), nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Propietario no encontrado", message(t, rec))
}

func TestStaffCRUD(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/staff", gin.H{
		"nombre": "Jose", "apellido": "Vera", "funcion": "Conserje",
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeCreated(t, rec)
	assert.Equal(t, "Personal creado", created.Message)
	require.NotZero(t, created.ID)

	rec = doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/staff/%d", created.ID), gin.H{
		"funcion": "Administrador",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Personal modificado", decodeCreated(t, rec).Message)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/staff/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var staff staffdomain.Staff
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &staff))
	assert.Equal(t, "Jose", staff.FirstName)
	assert.Equal(t, "Administrador", staff.Role)

	rec = doRequest(t, s, http.MethodDelete, fmt.Sprintf("/api/staff/%d", created.ID), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Personal eliminado correctamente", message(t, rec))

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/api/staff/%d", created.ID), nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Personal no encontrado", message(t, rec))
}

func TestCreateOwnerUnknownDepartment(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/owner", gin.H{
		"nombre": "Pedro", "apellido": "Rojas", "iddepto": 42,
	}, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Departamento no encontrado", message(t, rec))
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/depto/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Solicitud inválida", message(t, rec))
}
