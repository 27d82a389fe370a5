package utils

import (
	"context"

	"wedding-planner/pkg/auth"

	"github.com/google/uuid"
)

type contextKey string

const PrincipalKey contextKey = "principal"

func SetPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(auth.Principal)
	return p, ok
}

// GetUserIDFromContext returns the caller's user id when the request carries a user token.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	p, ok := ctx.Value(PrincipalKey).(auth.UserPrincipal)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}

// GetAdminFromContext returns the admin principal when the request carries an admin token.
func GetAdminFromContext(ctx context.Context) (auth.AdminPrincipal, bool) {
	p, ok := ctx.Value(PrincipalKey).(auth.AdminPrincipal)
	return p, ok
}
