package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/changes"
	"github.com/Cheertaboi/shop-admin/internal/concurrency"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

const productSubject = "product"

type ProductService struct {
	repo    ProductRepo
	lookups LookupRepo
	events  events.Publisher
}

func NewProductService(repo ProductRepo, lookups LookupRepo, pub events.Publisher) *ProductService {
	return &ProductService{repo: repo, lookups: lookups, events: pub}
}

func (s *ProductService) List(ctx context.Context, q models.ListQuery) (models.Page[models.ProductListItem], error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return models.Page[models.ProductListItem]{}, reject("products", productSubject, err)
	}
	return models.NewPage(items, total, q.Per), nil
}

// Get returns the product with its image URLs in display order.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}
	images, err := s.repo.Images(ctx, id)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}
	p.Images = imageURLs(images)
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in validation.ProductInput) (models.Product, error) {
	p, err := validation.ValidateProductPayload(in)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}
	if err := s.checkLookups(ctx, p); err != nil {
		return models.Product{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "product", Action: "created", ID: created.ID.String(), ActorID: auth.ActorID(ctx)})
	return created, nil
}

// Update replaces the product and its image set. Deleted products cannot be
// edited, and a body that matches the stored product is rejected.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in validation.ProductInput) (models.Product, error) {
	p, err := validation.ValidateProductPayload(in)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}
	if current.IsDeleted {
		return models.Product{}, reject("products", productSubject, apperr.BadRequest(models.ErrProductDeleted.Error()))
	}
	if err := s.checkLookups(ctx, p); err != nil {
		return models.Product{}, err
	}

	images, err := s.repo.Images(ctx, id)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}
	if changes.ProductUnchanged(current, p, images) {
		return models.Product{}, reject("products", productSubject, validation.Error(productSubject+" "+validation.MsgDataNotChanged))
	}

	p.ID = id
	p.IsSold = current.IsSold
	p.IsDeleted = current.IsDeleted
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "product", Action: "updated", ID: id.String(), ActorID: auth.ActorID(ctx)})
	return updated, nil
}

// SetAvailability delists or relists a product through the availability
// state machine.
func (s *ProductService) SetAvailability(ctx context.Context, id uuid.UUID, in validation.AvailabilityInput) (models.Product, error) {
	available, err := validation.ValidateAvailability(in)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	transition, action := models.Delist, "delisted"
	if available {
		transition, action = models.Relist, "relisted"
	}
	if err := transition(&p); err != nil {
		return models.Product{}, reject("products", productSubject, stateError(err))
	}
	if err := s.repo.SaveFlags(ctx, p); err != nil {
		return models.Product{}, reject("products", productSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "product", Action: action, ID: id.String(), ActorID: auth.ActorID(ctx)})
	return p, nil
}

// Delete soft-deletes the product. Its rows stay for order history.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return reject("products", productSubject, err)
	}
	if err := models.SoftDelete(&p); err != nil {
		return reject("products", productSubject, stateError(err))
	}
	if err := s.repo.SaveFlags(ctx, p); err != nil {
		return reject("products", productSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "product", Action: "deleted", ID: id.String(), ActorID: auth.ActorID(ctx)})
	return nil
}

// checkLookups confirms category, condition and brand exist. The three
// queries run concurrently; the first missing one is reported as 404.
func (s *ProductService) checkLookups(ctx context.Context, p models.Product) error {
	check := func(kind models.LookupKind, id uuid.UUID) concurrency.Task {
		return func(ctx context.Context) error {
			ok, err := s.lookups.Exists(ctx, kind, id)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound(string(kind) + " " + validation.MsgDataNotFound)
			}
			return nil
		}
	}

	err := concurrency.Parallel(ctx,
		check(models.LookupCategory, p.CategoryID),
		check(models.LookupCondition, p.ConditionID),
		check(models.LookupBrand, p.BrandID),
	)
	return reject("products", productSubject, err)
}

func stateError(err error) error {
	switch {
	case errors.Is(err, models.ErrProductDeleted),
		errors.Is(err, models.ErrProductDelisted),
		errors.Is(err, models.ErrProductSoldOut),
		errors.Is(err, models.ErrProductAlreadyListed):
		return apperr.BadRequest(err.Error())
	}
	return err
}

func imageURLs(images []models.ProductImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.Image)
	}
	return urls
}
