package server

import (
	"github.com/gin-gonic/gin"
	"github.com/miradorhq/mirador/internal/auth"
)

// BasicAuthRequired rejects requests whose basic auth credentials the
// configured authenticator does not accept.
func (s *Server) BasicAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !s.authn.Authenticate(auth.Credentials{Username: username, Password: password}) {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}
