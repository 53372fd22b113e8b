package auth

import (
	"crypto/subtle"

	"github.com/miradorhq/mirador/internal/config"
	"go.uber.org/fx"
)

// Credentials is a username/password pair presented by a client.
type Credentials struct {
	Username string
	Password string
}

// Authenticator decides whether a credential pair may use the API.
type Authenticator interface {
	Authenticate(Credentials) bool
}

type staticAuthenticator struct {
	username string
	password string
}

// New builds an authenticator over the single account from configuration.
func New(cfg config.Config) Authenticator {
	return &staticAuthenticator{
		username: cfg.AuthUsername,
		password: cfg.AuthPassword,
	}
}

func (a *staticAuthenticator) Authenticate(c Credentials) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(a.password)) == 1
	return userOK && passOK
}

var Module = fx.Module("auth",
	fx.Provide(New),
)
