package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	departmentdomain "github.com/miradorhq/mirador/internal/department/domain"
)

type createDepartmentRequest struct {
	Floors int `json:"pisos"`
}

func (s *Server) CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.departmentSvc.Create(c.Request.Context(), departmentdomain.CreateDepartmentRequest{
		Floors: req.Floors,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Departamento creado", "id": resp.ID})
}

func (s *Server) ListDepartments(c *gin.Context) {
	resp, err := s.departmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetDepartment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.departmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidRequest
	}
	return id, nil
}
