package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

// LookupRepo answers existence questions about the reference tables a
// product points at.
type LookupRepo struct {
	db *sql.DB
}

func NewLookupRepo(db *sql.DB) *LookupRepo {
	return &LookupRepo{db: db}
}

func (r *LookupRepo) Exists(ctx context.Context, kind models.LookupKind, id uuid.UUID) (bool, error) {
	table := kind.Table()
	if table == "" {
		return false, fmt.Errorf("unknown lookup kind %q", kind)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s: %w", kind, err)
	}
	return exists, nil
}
