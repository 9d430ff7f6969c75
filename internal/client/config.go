// Package client holds the connection configuration shared by everything
// that talks to the marketplace API server.
package client

import (
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/auth"
)

// Config holds the information needed to connect to a marketplace API
// server on behalf of one signed-in user.
type Config struct {
	Service  Service  `json:"service"`
	Identity Identity `json:"identity"`
}

// Service contains information how to connect to the marketplace API
// server.
type Service struct {
	// Server is the URL of the API server (the part before /api/v1/...).
	Server string `json:"server"`
}

// Identity is the actor the client acts as. The fronting proxy normally
// injects these headers; direct clients set them from their session.
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Role   api.Role  `json:"role"`
}

func NewDefault() *Config {
	return &Config{
		Service: Service{Server: "https://localhost:3443"},
	}
}

// NewHTTPClientFromConfig returns an HTTP client that stamps every
// request with the configured identity headers.
func NewHTTPClientFromConfig(config *Config) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &identityTransport{
			identity: config.Identity,
			base: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:          10,
				IdleConnTimeout:       30 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

type identityTransport struct {
	identity Identity
	base     http.RoundTripper
}

func (t *identityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.identity.UserID != (uuid.UUID{}) {
		req = req.Clone(req.Context())
		req.Header.Set(auth.UserIDHeader, t.identity.UserID.String())
		req.Header.Set(auth.UserRoleHeader, string(t.identity.Role))
	}
	return t.base.RoundTrip(req)
}
