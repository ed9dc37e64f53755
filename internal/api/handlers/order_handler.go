package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/api/respond"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type OrderService interface {
	List(ctx context.Context, q models.ListQuery) (models.Page[models.OrderListItem], error)
	Detail(ctx context.Context, id uuid.UUID) (models.OrderDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, in validation.OrderStatusInput) (models.Order, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID("order id", chi.URLParam(r, "orderID"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, d, "")
}

// UpdateStatus handles PATCH /orders/{orderID}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID("order id", chi.URLParam(r, "orderID"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	var in validation.OrderStatusInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	o, err := h.svc.UpdateStatus(r.Context(), id, in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, o, "order status updated")
}
