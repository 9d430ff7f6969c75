package auth

import (
	"context"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type userKeyType struct{}

var userKey userKeyType

// User is the authenticated actor. Authentication proper lives at the
// edge (reverse proxy / session service); this layer only needs the
// identity and role to gate transitions.
type User struct {
	ID   uuid.UUID
	Role api.Role
}

func UserFromContext(ctx context.Context) (User, bool) {
	val := ctx.Value(userKey)
	if val == nil {
		return User{}, false
	}
	return val.(User), true
}

func NewUserContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}
