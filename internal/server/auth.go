package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miradorhq/mirador/internal/auth"
)

// CheckCredentials lets clients probe their basic auth credentials without
// touching any resource.
func (s *Server) CheckCredentials(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok || !s.authn.Authenticate(auth.Credentials{Username: username, Password: password}) {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Credenciales correctas"})
}
