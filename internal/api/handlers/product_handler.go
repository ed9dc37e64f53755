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

type ProductService interface {
	List(ctx context.Context, q models.ListQuery) (models.Page[models.ProductListItem], error)
	Get(ctx context.Context, id uuid.UUID) (models.Product, error)
	Create(ctx context.Context, in validation.ProductInput) (models.Product, error)
	Update(ctx context.Context, id uuid.UUID, in validation.ProductInput) (models.Product, error)
	SetAvailability(ctx context.Context, id uuid.UUID, in validation.AvailabilityInput) (models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func productID(r *http.Request) (uuid.UUID, error) {
	return validation.ParseID("product id", chi.URLParam(r, "productID"))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, p, "")
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusCreated, p, "product created")
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}
	var in validation.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	p, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, p, "product updated")
}

// SetAvailability handles PATCH /products/{productID}/availability
func (h *ProductHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}
	var in validation.AvailabilityInput
	if err := decodeJSON(w, r, &in); err != nil {
		respond.Error(w, err)
		return
	}
	p, err := h.svc.SetAvailability(r.Context(), id, in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	msg := "product delisted"
	if p.IsAvailable {
		msg = "product listed"
	}
	respond.Data(w, http.StatusOK, p, msg)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Data(w, http.StatusOK, nil, "product deleted")
}
