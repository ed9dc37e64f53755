package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const productColumns = `p.id, p.name, p.title, p.subtitle, p.category_id, p.condition_id, p.brand_id,
	p.primary_image, p.hashtags, p.summary, p.description, p.original_price, p.selling_price,
	p.is_available, p.is_featured, p.is_sold, p.is_deleted, p.created_at, p.updated_at`

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p    models.Product
		desc []byte
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Subtitle,
		&p.CategoryID,
		&p.ConditionID,
		&p.BrandID,
		&p.PrimaryImage,
		(*pq.StringArray)(&p.Hashtags),
		(*pq.StringArray)(&p.Summary),
		&desc,
		&p.OriginalPrice,
		&p.SellingPrice,
		&p.IsAvailable,
		&p.IsFeatured,
		&p.IsSold,
		&p.IsDeleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	p.Description = desc
	return p, err
}

// List returns one page of products, newest first, with lookup names.
// Deleted products are included; the admin UI shows their state.
func (r *ProductRepo) List(ctx context.Context, q models.ListQuery) ([]models.ProductListItem, int, error) {
	var f filter
	if q.Name != "" {
		f.add("p.name = ?", q.Name)
	}
	if q.Keyword != "" {
		f.add("(p.name ILIKE ? OR p.title ILIKE ?)", likePattern(q.Keyword))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products p`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	limit, args := f.page(q.Per, q.Offset())
	query := `
		SELECT p.id, p.name, p.title, p.primary_image, p.selling_price,
		       c.name, b.name, cd.name,
		       p.is_available, p.is_sold, p.is_deleted, p.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		JOIN conditions cd ON cd.id = p.condition_id` + f.where() + `
		ORDER BY p.created_at DESC` + limit

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.ProductListItem
	for rows.Next() {
		var (
			it    models.ProductListItem
			flags models.Product
		)
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Title, &it.PrimaryImage, &it.SellingPrice,
			&it.Category, &it.Brand, &it.Condition,
			&flags.IsAvailable, &flags.IsSold, &flags.IsDeleted, &it.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		it.State = flags.State()
		items = append(items, it)
	}
	return items, total, rows.Err()
}

// GetByID loads the product without its images.
func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		return models.Product{}, mapErr("get product", err)
	}
	return p, nil
}

// Images returns the product's image rows in display order.
func (r *ProductRepo) Images(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, image FROM product_images WHERE product_id = $1 ORDER BY position ASC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Create inserts the product and its images in one transaction.
func (r *ProductRepo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	var created models.Product
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		query := `
			INSERT INTO products
			(id, name, title, subtitle, category_id, condition_id, brand_id, primary_image,
			 hashtags, summary, description, original_price, selling_price,
			 is_available, is_featured, is_sold, is_deleted, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,FALSE,FALSE,NOW(),NOW())
			RETURNING ` + productReturning
		row := tx.QueryRowContext(ctx, query, productArgs(p)...)
		var err error
		if created, err = scanProduct(row); err != nil {
			return mapErr("create product", err)
		}
		if err := insertImages(ctx, tx, created.ID, p.Images); err != nil {
			return err
		}
		created.Images = p.Images
		return nil
	})
	return created, err
}

// Update replaces the product's fields and its full image set in one
// transaction.
func (r *ProductRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	var updated models.Product
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		query := `
			UPDATE products
			SET name = $2, title = $3, subtitle = $4, category_id = $5, condition_id = $6,
			    brand_id = $7, primary_image = $8, hashtags = $9, summary = $10, description = $11,
			    original_price = $12, selling_price = $13, is_available = $14, is_featured = $15,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING ` + productReturning
		row := tx.QueryRowContext(ctx, query, productArgs(p)...)
		var err error
		if updated, err = scanProduct(row); err != nil {
			return mapErr("update product", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear product images: %w", err)
		}
		if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
			return err
		}
		updated.Images = p.Images
		return nil
	})
	return updated, err
}

// SaveFlags persists the soft-state flags after a state transition.
func (r *ProductRepo) SaveFlags(ctx context.Context, p models.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_available = $2, is_deleted = $3, updated_at = NOW() WHERE id = $1`,
		p.ID, p.IsAvailable, p.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("save product flags: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save product flags: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const productReturning = `id, name, title, subtitle, category_id, condition_id, brand_id,
	primary_image, hashtags, summary, description, original_price, selling_price,
	is_available, is_featured, is_sold, is_deleted, created_at, updated_at`

func productArgs(p models.Product) []any {
	return []any{
		p.ID,
		p.Name,
		p.Title,
		p.Subtitle,
		p.CategoryID,
		p.ConditionID,
		p.BrandID,
		p.PrimaryImage,
		pq.StringArray(p.Hashtags),
		pq.StringArray(p.Summary),
		string(p.Description),
		p.OriginalPrice,
		p.SellingPrice,
		p.IsAvailable,
		p.IsFeatured,
	}
}

func insertImages(ctx context.Context, tx *sql.Tx, productID uuid.UUID, images []string) error {
	stmt := `INSERT INTO product_images (id, product_id, image, position) VALUES ($1, $2, $3, $4)`
	for i, img := range images {
		if _, err := tx.ExecContext(ctx, stmt, uuid.New(), productID, img, i); err != nil {
			return fmt.Errorf("insert product image: %w", err)
		}
	}
	return nil
}
