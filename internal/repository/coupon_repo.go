package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const couponColumns = `id, code, name, discount, quantity, distributed_quantity,
	start_at, end_at, is_available, created_at, updated_at`

type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (models.Coupon, error) {
	var c models.Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Discount,
		&c.Quantity,
		&c.DistributedQuantity,
		&c.StartAt,
		&c.EndAt,
		&c.IsAvailable,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List returns one page of coupons ordered by start date plus the number of
// coupons matching the filters.
func (r *CouponRepo) List(ctx context.Context, q models.ListQuery) ([]models.Coupon, int, error) {
	var f filter
	if q.Name != "" {
		f.add("name = ?", q.Name)
	}
	if q.Keyword != "" {
		f.add("(name ILIKE ? OR code ILIKE ?)", likePattern(q.Keyword))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coupons`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count coupons: %w", err)
	}

	limit, args := f.page(q.Per, q.Offset())
	query := `SELECT ` + couponColumns + ` FROM coupons` + f.where() + ` ORDER BY start_at ASC` + limit
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, total, rows.Err()
}

func (r *CouponRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Coupon, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
	c, err := scanCoupon(row)
	if err != nil {
		return models.Coupon{}, mapErr("get coupon", err)
	}
	return c, nil
}

// CodeTaken reports whether another coupon already uses code. except is
// ignored in the lookup so an update may keep its own code.
func (r *CouponRepo) CodeTaken(ctx context.Context, code string, except uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1 AND id <> $2)`,
		code, except,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check coupon code: %w", err)
	}
	return taken, nil
}

func (r *CouponRepo) Create(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	query := `
		INSERT INTO coupons
		(id, code, name, discount, quantity, distributed_quantity, start_at, end_at, is_available, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING ` + couponColumns

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := r.db.QueryRowContext(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		c.Discount,
		c.Quantity,
		c.DistributedQuantity,
		c.StartAt,
		c.EndAt,
		c.IsAvailable,
	)
	created, err := scanCoupon(row)
	if err != nil {
		return models.Coupon{}, mapErr("create coupon", err)
	}
	return created, nil
}

func (r *CouponRepo) Update(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	query := `
		UPDATE coupons
		SET code = $2, name = $3, discount = $4, quantity = $5, distributed_quantity = $6,
		    start_at = $7, end_at = $8, is_available = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + couponColumns

	row := r.db.QueryRowContext(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		c.Discount,
		c.Quantity,
		c.DistributedQuantity,
		c.StartAt,
		c.EndAt,
		c.IsAvailable,
	)
	updated, err := scanCoupon(row)
	if err != nil {
		return models.Coupon{}, mapErr("update coupon", err)
	}
	return updated, nil
}

func (r *CouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireEnded switches off available coupons whose window closed before now
// and returns how many were changed.
func (r *CouponRepo) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coupons SET is_available = FALSE, updated_at = NOW() WHERE is_available AND end_at < $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("expire coupons: %w", err)
	}
	return res.RowsAffected()
}
