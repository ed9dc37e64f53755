package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

var orderCols = []string{"id", "user_id", "coupon_id", "merchant_order_no", "status", "amount",
	"shipping_method", "payment_method", "desired_date", "created_at", "updated_at"}

func orderRow(id, userID uuid.UUID, couponID any, status models.OrderStatus) []driver.Value {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return []driver.Value{id.String(), userID.String(), couponID, "M0001", string(status), 960, "home", "card", nil, now, now}
}

func TestOrderRepoUpdateStatus(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewOrderRepo(db)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectQuery(`UPDATE orders SET status = \$2`).
		WithArgs(id, "paid").
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(orderRow(id, userID, nil, models.OrderPaid)...))
	mock.ExpectCommit()

	var seen models.OrderStatus
	o, err := repo.UpdateStatus(context.Background(), id, models.OrderPaid, func(current models.OrderStatus) error {
		seen = current
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != models.OrderPending || o.Status != models.OrderPaid || o.CouponID != nil {
		t.Fatalf("seen=%s order=%+v", seen, o)
	}
}

func TestOrderRepoUpdateStatusVetoRollsBack(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewOrderRepo(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("paid"))
	mock.ExpectRollback()

	veto := errors.New("unchanged")
	_, err := repo.UpdateStatus(context.Background(), id, models.OrderPaid, func(models.OrderStatus) error { return veto })
	if !errors.Is(err, veto) {
		t.Fatalf("got %v", err)
	}
}

func TestOrderRepoUpdateStatusMissing(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewOrderRepo(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.UpdateStatus(context.Background(), id, models.OrderPaid, func(models.OrderStatus) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestOrderRepoDetail(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewOrderRepo(db)
	id, userID, couponID, productID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(orderRow(id, userID, couponID.String(), models.OrderPaid)...))
	mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address_zipcode", "address_district", "address_detail"}).
			AddRow(userID.String(), "Alice", "alice@example.com", "0912345678", "100", "Zhongzheng", "No. 1"))
	mock.ExpectQuery(`SELECT id, code, discount FROM coupons WHERE id = \$1`).WithArgs(couponID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount"}).AddRow(couponID.String(), "SPRING10", 9))
	mock.ExpectQuery(`FROM order_items oi`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "primary_image", "price", "quantity"}).
			AddRow(productID.String(), "Camera", "https://a.example.com/a.png", 900, 1))

	d, err := repo.Detail(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if d.Customer.Email != "alice@example.com" || d.Coupon == nil || d.Coupon.Discount != 9 || len(d.Items) != 1 {
		t.Fatalf("unexpected detail %+v", d)
	}
	if d.Order.CouponID == nil || *d.Order.CouponID != couponID {
		t.Fatalf("coupon id = %v", d.Order.CouponID)
	}
}

func TestOrderRepoListFilters(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewOrderRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders o LEFT JOIN users u ON u.id = o.user_id WHERE o.merchant_order_no = \$1`).
		WithArgs("M0001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY o.created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("M0001", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "merchant_order_no", "amount", "status", "created_at", "user_id", "email"}))

	orders, total, err := repo.List(context.Background(), models.ListQuery{Page: 1, Per: 10, MerchantOrderNo: "M0001"})
	if err != nil || total != 0 || len(orders) != 0 {
		t.Fatalf("got %v %d %v", orders, total, err)
	}
}
