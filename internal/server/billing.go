package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	billingrundomain "github.com/miradorhq/mirador/internal/billingrun/domain"
)

type generateChargesRequest struct {
	Year  int `json:"anio"`
	Month int `json:"mes"`
}

func (s *Server) GenerateCharges(c *gin.Context) {
	var req generateChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	_, err := s.generatorSvc.GenerateForPeriod(c.Request.Context(), billingrundomain.GenerateRequest{
		Year:  req.Year,
		Month: req.Month,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Gastos comunes generados correctamente"})
}
