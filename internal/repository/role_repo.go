package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) IDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id); err != nil {
		return uuid.Nil, mapErr("get role", err)
	}
	return id, nil
}
