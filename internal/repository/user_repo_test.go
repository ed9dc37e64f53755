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

var userCols = []string{"id", "role_id", "name", "email", "password", "photo", "phone", "birth_date",
	"address_zipcode", "address_district", "address_detail", "is_banned", "created_at", "updated_at"}

func userRow(id, roleID uuid.UUID, banned bool) []driver.Value {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return []driver.Value{id.String(), roleID.String(), "Alice", "alice@example.com", "$2a$10$hash", nil, "0912345678", nil,
		"100", "Zhongzheng", "No. 1", banned, now, now}
}

func TestUserRepoListByRole(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewUserRepo(db)
	roleID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role_id = \$1 AND \(name ILIKE \$2 OR email ILIKE \$2\)`).
		WithArgs(roleID, "%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY email ASC LIMIT \$3 OFFSET \$4`).
		WithArgs(roleID, "%ali%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "photo", "is_banned"}).
			AddRow(uuid.NewString(), "Alice", "alice@example.com", nil, false))

	users, total, err := repo.List(context.Background(), roleID, models.ListQuery{Page: 1, Per: 10, Keyword: "ali"})
	if err != nil || total != 1 || len(users) != 1 || users[0].Photo != nil {
		t.Fatalf("got %+v %d %v", users, total, err)
	}
}

func TestUserRepoGetByEmail(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewUserRepo(db)
	id, roleID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userRow(id, roleID, false)...))
	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil || u.ID != id || u.RoleID != roleID || u.PasswordHash != "$2a$10$hash" {
		t.Fatalf("got %+v %v", u, err)
	}

	mock.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userCols))
	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestUserRepoSetBanned(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewUserRepo(db)
	id, roleID := uuid.New(), uuid.New()

	mock.ExpectQuery(`UPDATE users SET is_banned = \$2`).WithArgs(id, true).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userRow(id, roleID, true)...))
	u, err := repo.SetBanned(context.Background(), id, true)
	if err != nil || !u.IsBanned {
		t.Fatalf("got %+v %v", u, err)
	}
}

func TestLookupRepoExists(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewLookupRepo(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM brands WHERE id = \$1\)`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err := repo.Exists(context.Background(), models.LookupBrand, id)
	if err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}

	if _, err := repo.Exists(context.Background(), models.LookupKind("colour"), id); err == nil {
		t.Fatal("unknown lookup kind accepted")
	}
}

func TestRoleRepoIDByName(t *testing.T) {
	db, mock, done := newMock(t)
	defer done()
	repo := NewRoleRepo(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT id FROM roles WHERE name = \$1`).WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	got, err := repo.IDByName(context.Background(), "admin")
	if err != nil || got != id {
		t.Fatalf("got %v %v", got, err)
	}
}
