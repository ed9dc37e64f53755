package models

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID                  uuid.UUID `json:"id"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	Discount            int       `json:"discount"`
	Quantity            int       `json:"quantity"`
	DistributedQuantity int       `json:"distributed_quantity"`
	StartAt             time.Time `json:"start_at"`
	EndAt               time.Time `json:"end_at"`
	IsAvailable         bool      `json:"is_available"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Expired reports whether the coupon window closed before now.
func (c Coupon) Expired(now time.Time) bool {
	return c.EndAt.Before(now)
}
