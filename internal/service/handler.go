package service

import (
	"context"

	"github.com/talentlink/marketplace/internal/auth"
	"github.com/talentlink/marketplace/internal/store"
)

// ServiceHandler implements the gateway operations on top of the store.
// It re-checks every transition against the lifecycle tables: clients
// fast-fail locally, but the server is the final arbiter.
type ServiceHandler struct {
	store store.Store
}

func NewServiceHandler(store store.Store) *ServiceHandler {
	return &ServiceHandler{store: store}
}

// requireUser rejects anonymous callers. Only inquiry creation accepts
// them; everything else needs an identity.
func requireUser(ctx context.Context) (auth.User, error) {
	user, found := auth.UserFromContext(ctx)
	if !found {
		return auth.User{}, NewErrUnauthenticated()
	}
	return user, nil
}
