package validation

import (
	"strings"
	"time"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

// CouponInput is the request body for creating or replacing a coupon.
// Pointer fields distinguish an absent key from a zero value.
type CouponInput struct {
	Code                *string `json:"code"`
	Name                *string `json:"name"`
	Discount            *int    `json:"discount"`
	Quantity            *int    `json:"quantity"`
	DistributedQuantity *int    `json:"distributed_quantity"`
	StartAt             *string `json:"start_at"`
	EndAt               *string `json:"end_at"`
	IsAvailable         *bool   `json:"is_available"`
}

func (in CouponInput) fields() map[string]any {
	return map[string]any{
		"code":                 in.Code,
		"name":                 in.Name,
		"discount":             in.Discount,
		"quantity":             in.Quantity,
		"distributed_quantity": in.DistributedQuantity,
		"start_at":             in.StartAt,
		"end_at":               in.EndAt,
		"is_available":         in.IsAvailable,
	}
}

// CouponPolicy toggles the optional coupon date rules.
type CouponPolicy struct {
	// EndOfDayGrace moves a date-only end_at to 23:59:59 of that day.
	EndOfDayGrace bool
	// RequireFutureStart rejects a new coupon whose start_at is not after now.
	RequireFutureStart bool
}

const endOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second

// ValidateCouponCreate checks a new coupon. Creation requires the already
// distributed count to stay strictly below quantity.
func ValidateCouponCreate(in CouponInput, policy CouponPolicy, now time.Time) (models.Coupon, error) {
	c, err := couponShape(in, policy)
	if err != nil {
		return models.Coupon{}, err
	}
	if c.DistributedQuantity >= c.Quantity {
		return models.Coupon{}, Error(MsgCouponDistributedAtCap)
	}
	if policy.RequireFutureStart && !c.StartAt.After(now) {
		return models.Coupon{}, Error(MsgCouponStartBeforeNow)
	}
	if !c.EndAt.After(c.StartAt) {
		return models.Coupon{}, Error(MsgCouponEndBeforeStart)
	}
	return c, nil
}

// ValidateCouponUpdate checks a replacement coupon. Updates may bring the
// distributed count up to quantity but not past it.
func ValidateCouponUpdate(in CouponInput, policy CouponPolicy) (models.Coupon, error) {
	c, err := couponShape(in, policy)
	if err != nil {
		return models.Coupon{}, err
	}
	if !c.EndAt.After(c.StartAt) {
		return models.Coupon{}, Error(MsgCouponEndBeforeStart)
	}
	if c.DistributedQuantity > c.Quantity {
		return models.Coupon{}, Error(MsgCouponDistributedOverCap)
	}
	return c, nil
}

func couponShape(in CouponInput, policy CouponPolicy) (models.Coupon, error) {
	if err := FieldsError(ValidateFields(in.fields(), CouponRules)); err != nil {
		return models.Coupon{}, err
	}
	if *in.Quantity <= 0 {
		return models.Coupon{}, Error(MsgCouponQuantityZero)
	}

	start, _, err := ParseCouponTime(*in.StartAt)
	if err != nil {
		return models.Coupon{}, Error(MsgCouponDateFormat)
	}
	end, dateOnly, err := ParseCouponTime(*in.EndAt)
	if err != nil {
		return models.Coupon{}, Error(MsgCouponDateFormat)
	}
	if dateOnly && policy.EndOfDayGrace {
		end = end.Add(endOfDay)
	}

	return models.Coupon{
		Code:                strings.TrimSpace(*in.Code),
		Name:                strings.TrimSpace(*in.Name),
		Discount:            *in.Discount,
		Quantity:            *in.Quantity,
		DistributedQuantity: *in.DistributedQuantity,
		StartAt:             start,
		EndAt:               end,
		IsAvailable:         *in.IsAvailable,
	}, nil
}

// ParseCouponTime accepts YYYY-MM-DD (UTC midnight) or RFC3339 and reports
// whether the value was a bare date.
func ParseCouponTime(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if IsDate(s) {
		t, err := time.Parse(dateLayout, s)
		return t.UTC(), true, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
