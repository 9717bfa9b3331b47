package utils

import (
	"context"

	"pilgrim-provider/pkg/identity"

	"github.com/google/uuid"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// SetPrincipalContext stores the authenticated caller on ctx.
func SetPrincipalContext(ctx context.Context, p *identity.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipalFromContext(ctx context.Context) (*identity.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*identity.Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}
