package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPaid     OrderStatus = "paid"
	OrderPending  OrderStatus = "pending"
	OrderCanceled OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPaid, OrderPending, OrderCanceled:
		return true
	}
	return false
}

type Order struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	CouponID        *uuid.UUID  `json:"coupon_id"`
	MerchantOrderNo string      `json:"merchant_order_no"`
	Status          OrderStatus `json:"status"`
	Amount          int         `json:"amount"`
	ShippingMethod  string      `json:"shipping_method"`
	PaymentMethod   string      `json:"payment_method"`
	DesiredDate     *time.Time  `json:"desired_date"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderListItem is the projection used by the order list.
type OrderListItem struct {
	ID              uuid.UUID   `json:"id"`
	MerchantOrderNo string      `json:"merchant_order_no"`
	Amount          int         `json:"amount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UserID          uuid.UUID   `json:"user_id"`
	UserEmail       string      `json:"user_email"`
}

type OrderCustomer struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	AddressZipcode  string    `json:"address_zipcode"`
	AddressDistrict string    `json:"address_district"`
	AddressDetail   string    `json:"address_detail"`
}

type OrderCoupon struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Discount int       `json:"discount"`
}

type OrderItem struct {
	ProductID    uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PrimaryImage string    `json:"primary_image"`
	Price        int       `json:"price"`
	Quantity     int       `json:"quantity"`
}

type OrderDetail struct {
	Order     Order          `json:"order"`
	Customer  OrderCustomer  `json:"user"`
	Coupon    *OrderCoupon   `json:"coupon"`
	Items     []OrderItem    `json:"order_items"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

// ShippingFee is the flat fee included in every order amount.
const ShippingFee = 60

// PriceBreakdown splits an order amount into item total, discount and
// shipping.
type PriceBreakdown struct {
	ShippingFee      decimal.Decimal `json:"shipping_fee"`
	ItemsTotalAmount decimal.Decimal `json:"items_total_amount"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
}

// NewPriceBreakdown derives the breakdown from the charged amount. A coupon
// discount is expressed in tenths of the list price (9 means 90%); no
// coupon counts as 10.
func NewPriceBreakdown(amount int, coupon *OrderCoupon) PriceBreakdown {
	ten := decimal.NewFromInt(10)
	discount := ten
	if coupon != nil && coupon.Discount > 0 {
		discount = decimal.NewFromInt(int64(coupon.Discount))
	}

	fee := decimal.NewFromInt(ShippingFee)
	paid := decimal.NewFromInt(int64(amount)).Sub(fee)
	perTenth := paid.Div(discount)

	return PriceBreakdown{
		ShippingFee:      fee,
		ItemsTotalAmount: perTenth.Mul(ten).Round(0),
		DiscountAmount:   perTenth.Mul(ten.Sub(discount)).Round(0),
	}
}
