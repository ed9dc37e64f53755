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

// CouponService is the part of service.CouponService the handler needs.
type CouponService interface {
	List(ctx context.Context, q models.ListQuery) (models.Page[models.Coupon], error)
	Get(ctx context.Context, id uuid.UUID) (models.Coupon, error)
	Create(ctx context.Context, in validation.CouponInput) (models.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, in validation.CouponInput) (models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponHandler struct {
	svc CouponService
}

func NewCouponHandler(svc CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// List handles GET /coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
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

// Get handles GET /coupons/{couponID}
func (h *CouponHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID("coupon id", chi.URLParam(r, "couponID"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, c, "")
}

// Create handles POST /coupons
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.CouponInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusCreated, c, "coupon created")
}

// Update handles PUT /coupons/{couponID}
func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID("coupon id", chi.URLParam(r, "couponID"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	var in validation.CouponInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	c, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, c, "coupon updated")
}

// Delete handles DELETE /coupons/{couponID}
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID("coupon id", chi.URLParam(r, "couponID"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, nil, "coupon deleted")
}
