package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/api/respond"
	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/service"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type AuthService interface {
	Login(ctx context.Context, in validation.LoginInput) (service.LoginResult, error)
	VerifyAdmin(ctx context.Context, id uuid.UUID) (models.User, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in validation.LoginInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	res, err := h.svc.Login(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, res, "signed in")
}

// Verify handles GET /verify. It runs behind Authenticate.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFrom(r.Context())
	if !ok {
		respond.Error(w, apperr.Unauthorized(validation.MsgUserNotSignedIn))
		return
	}
	u, err := h.svc.VerifyAdmin(r.Context(), u.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, u, "")
}
