package auth

import (
	"context"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

type ctxKey struct{}

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(models.User)
	return u, ok
}

// ActorID is the authenticated user's id as a string, or "" when anonymous.
func ActorID(ctx context.Context) string {
	if u, ok := UserFrom(ctx); ok {
		return u.ID.String()
	}
	return ""
}
