package auth

import (
	"testing"

	"github.com/miradorhq/mirador/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestStaticAuthenticator(t *testing.T) {
	a := New(config.Config{AuthUsername: "ADMIN", AuthPassword: "ADMIN"})

	assert.True(t, a.Authenticate(Credentials{Username: "ADMIN", Password: "ADMIN"}))
	assert.False(t, a.Authenticate(Credentials{Username: "ADMIN", Password: "admin"}))
	assert.False(t, a.Authenticate(Credentials{Username: "admin", Password: "ADMIN"}))
	assert.False(t, a.Authenticate(Credentials{}))
}
