package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const userColumns = `id, role_id, name, email, password, photo, phone, birth_date,
	address_zipcode, address_district, address_detail, is_banned, created_at, updated_at`

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.RoleID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Photo,
		&u.Phone,
		&u.BirthDate,
		&u.AddressZipcode,
		&u.AddressDistrict,
		&u.AddressDetail,
		&u.IsBanned,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// List returns one page of users holding roleID, ordered by email.
func (r *UserRepo) List(ctx context.Context, roleID uuid.UUID, q models.ListQuery) ([]models.UserListItem, int, error) {
	var f filter
	f.add("role_id = ?", roleID)
	if q.Name != "" {
		f.add("name = ?", q.Name)
	}
	if q.Keyword != "" {
		f.add("(name ILIKE ? OR email ILIKE ?)", likePattern(q.Keyword))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	limit, args := f.page(q.Per, q.Offset())
	query := `SELECT id, name, email, photo, is_banned FROM users` + f.where() + ` ORDER BY email ASC` + limit
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserListItem
	for rows.Next() {
		var u models.UserListItem
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.IsBanned); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return models.User{}, mapErr("get user", err)
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return models.User{}, mapErr("get user by email", err)
	}
	return u, nil
}

func (r *UserRepo) SetBanned(ctx context.Context, id uuid.UUID, banned bool) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET is_banned = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns,
		id, banned,
	)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, mapErr("set user banned", err)
	}
	return u, nil
}
