package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

// Repos required by the services (interfaces so tests can fake them).

type CouponRepo interface {
	List(ctx context.Context, q models.ListQuery) ([]models.Coupon, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Coupon, error)
	CodeTaken(ctx context.Context, code string, except uuid.UUID) (bool, error)
	Create(ctx context.Context, c models.Coupon) (models.Coupon, error)
	Update(ctx context.Context, c models.Coupon) (models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepo interface {
	List(ctx context.Context, q models.ListQuery) ([]models.ProductListItem, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Product, error)
	Images(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	SaveFlags(ctx context.Context, p models.Product) error
}

type LookupRepo interface {
	Exists(ctx context.Context, kind models.LookupKind, id uuid.UUID) (bool, error)
}

type OrderRepo interface {
	List(ctx context.Context, q models.ListQuery) ([]models.OrderListItem, int, error)
	Detail(ctx context.Context, id uuid.UUID) (models.OrderDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, check func(current models.OrderStatus) error) (models.Order, error)
}

type UserRepo interface {
	List(ctx context.Context, roleID uuid.UUID, q models.ListQuery) ([]models.UserListItem, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) (models.User, error)
}

// Roles resolves role names to ids; *cache.RoleCache satisfies it.
type Roles interface {
	RoleID(ctx context.Context, name string) (uuid.UUID, error)
}

// TokenVerifier and TokenIssuer are satisfied by *auth.Tokens.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

type Tokens interface {
	TokenVerifier
	TokenIssuer
}
