package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ownerdomain "github.com/miradorhq/mirador/internal/owner/domain"
)

type createOwnerRequest struct {
	FirstName    string `json:"nombre"`
	LastName     string `json:"apellido"`
	DepartmentID int64  `json:"iddepto"`
}

type updateOwnerRequest struct {
	FirstName    *string `json:"nombre"`
	LastName     *string `json:"apellido"`
	DepartmentID *int64  `json:"iddepto"`
}

func (s *Server) CreateOwner(c *gin.Context) {
	var req createOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.ownerSvc.Create(c.Request.Context(), ownerdomain.CreateOwnerRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Propietario creado", "id": resp.ID})
}

func (s *Server) ListOwners(c *gin.Context) {
	resp, err := s.ownerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetOwner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.ownerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateOwner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.ownerSvc.Update(c.Request.Context(), id, ownerdomain.UpdateOwnerRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Propietario modificado", "id": resp.ID})
}

func (s *Server) DeleteOwner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.ownerSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Propietario eliminado correctamente"})
}
