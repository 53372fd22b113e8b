package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	chargedomain "github.com/miradorhq/mirador/internal/charge/domain"
)

type payChargeRequest struct {
	DepartmentID int64 `json:"iddepto"`
	Year         int   `json:"anio"`
	Month        int   `json:"mes"`
	Amount       int64 `json:"valor"`
}

func (s *Server) PayCharge(c *gin.Context) {
	var req payChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	_, err := s.chargeSvc.Pay(c.Request.Context(), chargedomain.PayRequest{
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Month:        req.Month,
		Amount:       req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Gasto común pagado correctamente"})
}

func (s *Server) ListCharges(c *gin.Context) {
	resp, err := s.chargeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetCharge(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.chargeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteCharge(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.chargeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Gasto común eliminado correctamente"})
}
