package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Cheertaboi/shop-admin/internal/api/respond"
	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

// Authenticator is implemented by service.AuthService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
	RequireAdmin(ctx context.Context, u models.User) error
}

// Authenticate resolves the bearer token and stores the user on the request
// context.
func Authenticate(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := a.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				respond.Error(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
		})
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := auth.UserFrom(r.Context())
			if !ok {
				respond.Error(w, apperr.Unauthorized(validation.MsgUserNotSignedIn))
				return
			}
			if err := a.RequireAdmin(r.Context(), u); err != nil {
				respond.Error(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
