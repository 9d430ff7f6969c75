package auth

import (
	"net/http"

	"go.uber.org/zap"
)

type Authenticator interface {
	Authenticator(next http.Handler) http.Handler
}

const (
	HeaderAuthentication string = "header"
	NoneAuthentication   string = "none"
)

func NewAuthenticator(authType string) (Authenticator, error) {
	zap.S().Named("auth").Infof("authentication: '%s'", authType)

	switch authType {
	case HeaderAuthentication:
		return NewHeaderAuthenticator()
	default:
		return NewNoneAuthenticator()
	}
}
