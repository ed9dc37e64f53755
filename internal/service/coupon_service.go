package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/changes"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

const couponSubject = "coupon"

type CouponService struct {
	repo   CouponRepo
	events events.Publisher
	policy validation.CouponPolicy
	now    func() time.Time
}

func NewCouponService(repo CouponRepo, pub events.Publisher, policy validation.CouponPolicy) *CouponService {
	return &CouponService{
		repo:   repo,
		events: pub,
		policy: policy,
		now:    time.Now,
	}
}

func (s *CouponService) List(ctx context.Context, q models.ListQuery) (models.Page[models.Coupon], error) {
	coupons, total, err := s.repo.List(ctx, q)
	if err != nil {
		return models.Page[models.Coupon]{}, reject("coupons", couponSubject, err)
	}
	return models.NewPage(coupons, total, q.Per), nil
}

func (s *CouponService) Get(ctx context.Context, id uuid.UUID) (models.Coupon, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}
	return c, nil
}

// Create validates the body, checks the code is free and inserts the coupon.
// A concurrent insert of the same code still fails on the unique index and
// comes back as the same "already used" error.
func (s *CouponService) Create(ctx context.Context, in validation.CouponInput) (models.Coupon, error) {
	c, err := validation.ValidateCouponCreate(in, s.policy, s.now())
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}

	taken, err := s.repo.CodeTaken(ctx, c.Code, uuid.Nil)
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}
	if taken {
		return models.Coupon{}, reject("coupons", couponSubject, apperr.BadRequest("coupon code "+validation.MsgDataAlreadyUsed))
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return models.Coupon{}, reject("coupons", "coupon code", err)
	}

	publish(ctx, s.events, events.Event{Resource: "coupon", Action: "created", ID: created.ID.String(), ActorID: auth.ActorID(ctx), Data: created})
	return created, nil
}

// Update replaces every writable field of the coupon. A body identical to
// the stored coupon is rejected.
func (s *CouponService) Update(ctx context.Context, id uuid.UUID, in validation.CouponInput) (models.Coupon, error) {
	c, err := validation.ValidateCouponUpdate(in, s.policy)
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}
	c.ID = id
	if changes.CouponUnchanged(current, c) {
		return models.Coupon{}, reject("coupons", couponSubject, validation.Error(couponSubject+" "+validation.MsgDataNotChanged))
	}

	if c.Code != current.Code {
		taken, err := s.repo.CodeTaken(ctx, c.Code, id)
		if err != nil {
			return models.Coupon{}, reject("coupons", couponSubject, err)
		}
		if taken {
			return models.Coupon{}, reject("coupons", couponSubject, apperr.BadRequest("coupon code "+validation.MsgDataAlreadyUsed))
		}
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return models.Coupon{}, reject("coupons", couponSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "coupon", Action: "updated", ID: id.String(), ActorID: auth.ActorID(ctx), Data: updated})
	return updated, nil
}

func (s *CouponService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return reject("coupons", couponSubject, err)
	}
	publish(ctx, s.events, events.Event{Resource: "coupon", Action: "deleted", ID: id.String(), ActorID: auth.ActorID(ctx)})
	return nil
}
