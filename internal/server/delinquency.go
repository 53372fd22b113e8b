package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListDelinquents(c *gin.Context) {
	resp, err := s.delinquencySvc.ListDelinquents(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
