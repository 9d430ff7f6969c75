package auth

import (
	"net/http"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

const (
	UserIDHeader   = "X-User-Id"
	UserRoleHeader = "X-User-Role"
)

// HeaderAuthenticator trusts identity headers set by the fronting proxy.
// Requests without identity headers pass through anonymously; endpoints
// that need an actor reject them further down.
type HeaderAuthenticator struct{}

func NewHeaderAuthenticator() (*HeaderAuthenticator, error) {
	return &HeaderAuthenticator{}, nil
}

func (h *HeaderAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(UserIDHeader) == "" && r.Header.Get(UserRoleHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(r.Header.Get(UserIDHeader))
		if err != nil {
			http.Error(w, "missing or malformed identity", http.StatusUnauthorized)
			return
		}

		role, ok := api.StringToRole(r.Header.Get(UserRoleHeader))
		if !ok {
			http.Error(w, "unknown role", http.StatusUnauthorized)
			return
		}

		ctx := NewUserContext(r.Context(), User{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
