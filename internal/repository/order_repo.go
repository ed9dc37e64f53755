package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const orderColumns = `id, user_id, coupon_id, merchant_order_no, status, amount,
	shipping_method, payment_method, desired_date, created_at, updated_at`

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.CouponID,
		&o.MerchantOrderNo,
		&o.Status,
		&o.Amount,
		&o.ShippingMethod,
		&o.PaymentMethod,
		&o.DesiredDate,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// List returns one page of orders, newest first, with the buyer's email.
// Keyword matches the status or the buyer's email.
func (r *OrderRepo) List(ctx context.Context, q models.ListQuery) ([]models.OrderListItem, int, error) {
	var f filter
	if q.MerchantOrderNo != "" {
		f.add("o.merchant_order_no = ?", q.MerchantOrderNo)
	}
	if q.Keyword != "" {
		f.add("(o.status ILIKE ? OR u.email ILIKE ?)", likePattern(q.Keyword))
	}

	from := ` FROM orders o LEFT JOIN users u ON u.id = o.user_id`

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*)`+from+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	limit, args := f.page(q.Per, q.Offset())
	query := `SELECT o.id, o.merchant_order_no, o.amount, o.status, o.created_at, o.user_id, COALESCE(u.email, '')` +
		from + f.where() + ` ORDER BY o.created_at DESC` + limit
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderListItem
	for rows.Next() {
		var o models.OrderListItem
		if err := rows.Scan(&o.ID, &o.MerchantOrderNo, &o.Amount, &o.Status, &o.CreatedAt, &o.UserID, &o.UserEmail); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return models.Order{}, mapErr("get order", err)
	}
	return o, nil
}

// Detail loads the order with its buyer, coupon and line items. The price
// breakdown is left to the caller.
func (r *OrderRepo) Detail(ctx context.Context, id uuid.UUID) (models.OrderDetail, error) {
	var d models.OrderDetail

	order, err := r.GetByID(ctx, id)
	if err != nil {
		return d, err
	}
	d.Order = order

	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address_zipcode, address_district, address_detail
		FROM users WHERE id = $1`, order.UserID,
	).Scan(
		&d.Customer.ID,
		&d.Customer.Name,
		&d.Customer.Email,
		&d.Customer.Phone,
		&d.Customer.AddressZipcode,
		&d.Customer.AddressDistrict,
		&d.Customer.AddressDetail,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return d, fmt.Errorf("get order user: %w", err)
	}

	if order.CouponID != nil {
		var c models.OrderCoupon
		err := r.db.QueryRowContext(ctx,
			`SELECT id, code, discount FROM coupons WHERE id = $1`, *order.CouponID,
		).Scan(&c.ID, &c.Code, &c.Discount)
		switch {
		case err == nil:
			d.Coupon = &c
		case !errors.Is(err, sql.ErrNoRows):
			return d, fmt.Errorf("get order coupon: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.product_id, COALESCE(p.name, ''), COALESCE(p.primary_image, ''), oi.price, oi.quantity
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1`, id)
	if err != nil {
		return d, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	d.Items = []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.PrimaryImage, &it.Price, &it.Quantity); err != nil {
			return d, fmt.Errorf("scan order item: %w", err)
		}
		d.Items = append(d.Items, it)
	}
	return d, rows.Err()
}

// UpdateStatus locks the order row, lets check veto the change against the
// current status and then writes next. Everything runs in one transaction so
// two admins cannot race each other past check.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, check func(current models.OrderStatus) error) (models.Order, error) {
	var updated models.Order
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		var current models.OrderStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			return mapErr("lock order", err)
		}
		if err := check(current); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx,
			`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+orderColumns,
			id, next,
		)
		if updated, err = scanOrder(row); err != nil {
			return mapErr("update order status", err)
		}
		return nil
	})
	return updated, err
}
