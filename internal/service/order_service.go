package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

const orderSubject = "order"

type OrderService struct {
	repo   OrderRepo
	events events.Publisher
}

func NewOrderService(repo OrderRepo, pub events.Publisher) *OrderService {
	return &OrderService{repo: repo, events: pub}
}

func (s *OrderService) List(ctx context.Context, q models.ListQuery) (models.Page[models.OrderListItem], error) {
	orders, total, err := s.repo.List(ctx, q)
	if err != nil {
		return models.Page[models.OrderListItem]{}, reject("orders", orderSubject, err)
	}
	return models.NewPage(orders, total, q.Per), nil
}

// Detail returns the order with buyer, coupon, items and price breakdown.
func (s *OrderService) Detail(ctx context.Context, id uuid.UUID) (models.OrderDetail, error) {
	d, err := s.repo.Detail(ctx, id)
	if err != nil {
		return models.OrderDetail{}, reject("orders", orderSubject, err)
	}
	d.Breakdown = models.NewPriceBreakdown(d.Order.Amount, d.Coupon)
	return d, nil
}

// UpdateStatus moves the order to a new status. The same-status check runs
// against the locked row inside the repository transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, in validation.OrderStatusInput) (models.Order, error) {
	next, err := validation.ValidateOrderStatus(in)
	if err != nil {
		return models.Order{}, reject("orders", orderSubject, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next, func(current models.OrderStatus) error {
		return validation.ValidateOrderTransition(current, next)
	})
	if err != nil {
		return models.Order{}, reject("orders", orderSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "order", Action: "status_changed", ID: id.String(), ActorID: auth.ActorID(ctx), Data: map[string]string{"status": string(next)}})
	return updated, nil
}
