package handlers

import (
	"context"
	"net/http"

	"github.com/Cheertaboi/shop-admin/internal/api/respond"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/service"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type UserService interface {
	List(ctx context.Context, q models.ListQuery) (models.Page[models.UserListItem], error)
	SetBanned(ctx context.Context, in validation.BanToggleInput) (service.BanResult, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := validation.ParseListQuery(r.URL.Query())
	if err != nil {
		respond.Error(w, err)
		return
	}
	page, err := h.svc.List(r.Context(), q)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, page, "")
}

// SetPermission handles PATCH /users/permission. Asking for the current
// state is a 200 with an "already" message.
func (h *UserHandler) SetPermission(w http.ResponseWriter, r *http.Request) {
	var in validation.BanToggleInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	res, err := h.svc.SetBanned(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, res.User, res.Message)
}
