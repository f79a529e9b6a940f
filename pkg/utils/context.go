package utils

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller's decoded claim set, attached to the
// request context by the auth middleware.
type Identity struct {
	ID         uuid.UUID
	IsBusiness bool
	IsAdmin    bool
}

type contextKey string

const identityKey contextKey = "identity"

func SetIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
