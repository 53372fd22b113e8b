package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	billingrundomain "github.com/miradorhq/mirador/internal/billingrun/domain"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
	ownerdomain "github.com/miradorhq/mirador/internal/owner/domain"
	staffdomain "github.com/miradorhq/mirador/internal/staff/domain"
	tenantdomain "github.com/miradorhq/mirador/internal/tenant/domain"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid_request")
)

// messageResponse is the single error/confirmation envelope of the API.
type messageResponse struct {
	Message string `json:"mensaje"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, messageResponse{Message: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "Solicitud inválida"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Autenticacion requerida"

	case errors.Is(err, chargedomain.ErrMissingFields),
		errors.Is(err, staffdomain.ErrInvalidFields):
		return http.StatusBadRequest, "Todos los campos son requeridos"
	case errors.Is(err, chargedomain.ErrInvalidYear):
		return http.StatusBadRequest, "El año debe tener exactamente 4 dígitos"
	case errors.Is(err, chargedomain.ErrInvalidMonth):
		return http.StatusBadRequest, "El mes debe estar entre 1 y 12"
	case errors.Is(err, chargedomain.ErrInvalidAmount):
		return http.StatusBadRequest, "El monto debe ser mayor que cero"
	case errors.Is(err, chargedomain.ErrInvalidPaidStatus):
		return http.StatusBadRequest, "El estado de pago debe ser SI o NO"

	case errors.Is(err, billingrundomain.ErrAlreadyGenerated):
		return http.StatusBadRequest, "Ya existe un gasto común para ese año y mes"
	case errors.Is(err, billingrundomain.ErrNoDepartments):
		return http.StatusBadRequest, "No hay departamentos registrados"

	case errors.Is(err, chargedomain.ErrAlreadyPaid):
		return http.StatusBadRequest, "El gasto común ya está pagado"
	case errors.Is(err, chargedomain.ErrAmountMismatch):
		return http.StatusBadRequest, "El monto no coincide con el gasto común"
	case errors.Is(err, chargedomain.ErrNotFound):
		return http.StatusNotFound, "Gasto común no encontrado"

	case errors.Is(err, departmentdomain.ErrInvalidFloors):
		return http.StatusBadRequest, "La cantidad de pisos debe ser mayor que cero"
	case errors.Is(err, departmentdomain.ErrNotFound):
		return http.StatusNotFound, "Departamento no encontrado"

	case errors.Is(err, ownerdomain.ErrInvalidName),
		errors.Is(err, tenantdomain.ErrInvalidName):
		return http.StatusBadRequest, "Nombre y apellido son requeridos"
	case errors.Is(err, ownerdomain.ErrNotFound):
		return http.StatusNotFound, "Propietario no encontrado"
	case errors.Is(err, tenantdomain.ErrNotFound):
		return http.StatusNotFound, "Arriendatario no encontrado"
	case errors.Is(err, staffdomain.ErrNotFound):
		return http.StatusNotFound, "Personal no encontrado"
	}

	return http.StatusInternalServerError, "Error interno del servidor"
}
