package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/repository"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type AuthService struct {
	users    UserRepo
	roles    Roles
	verifier TokenVerifier
	issuer   TokenIssuer
}

func NewAuthService(users UserRepo, roles Roles, tokens Tokens) *AuthService {
	return &AuthService{users: users, roles: roles, verifier: tokens, issuer: tokens}
}

type LoginUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	RoleID uuid.UUID `json:"role"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// Login checks credentials and issues a token. Only admins may sign in.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (LoginResult, error) {
	if err := validation.ValidateLogin(in); err != nil {
		return LoginResult{}, reject("auth", userSubject, err)
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return LoginResult{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgLoginFailed))
	}
	if err != nil {
		return LoginResult{}, reject("auth", userSubject, err)
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return LoginResult{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgLoginFailed))
	}
	if u.IsBanned {
		return LoginResult{}, reject("auth", userSubject, apperr.Forbidden(validation.MsgUserBanned))
	}

	admin, err := s.isAdmin(ctx, u)
	if err != nil {
		return LoginResult{}, reject("auth", "admin role_id", err)
	}
	if !admin {
		return LoginResult{}, reject("auth", userSubject, apperr.Forbidden(validation.MsgNotAdminLogin))
	}

	token, err := s.issuer.Issue(u.ID)
	if err != nil {
		return LoginResult{}, apperr.Internal(err)
	}
	return LoginResult{
		Token: token,
		User:  LoginUser{ID: u.ID, Name: u.Name, RoleID: u.RoleID},
	}, nil
}

// Authenticate resolves a bearer token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgUserNotSignedIn))
	}

	id, err := s.verifier.Verify(token)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return models.User{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgExpiredToken))
	case err != nil:
		return models.User{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgInvalidToken))
	}

	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, reject("auth", userSubject, apperr.Unauthorized(validation.MsgUserNotFound))
	}
	if err != nil {
		return models.User{}, reject("auth", userSubject, err)
	}
	if u.IsBanned {
		return models.User{}, reject("auth", userSubject, apperr.Forbidden(validation.MsgUserBanned))
	}
	return u, nil
}

// RequireAdmin returns a 403 unless u holds the admin role.
func (s *AuthService) RequireAdmin(ctx context.Context, u models.User) error {
	admin, err := s.isAdmin(ctx, u)
	if err != nil {
		return reject("auth", "admin role_id", err)
	}
	if !admin {
		return reject("auth", userSubject, apperr.Forbidden(validation.MsgPermissionDenied))
	}
	return nil
}

// VerifyAdmin reloads the caller and confirms the admin role. It backs the
// admin UI's session check.
func (s *AuthService) VerifyAdmin(ctx context.Context, id uuid.UUID) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, reject("auth", userSubject, err)
	}
	if err := s.RequireAdmin(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *AuthService) isAdmin(ctx context.Context, u models.User) (bool, error) {
	adminID, err := s.roles.RoleID(ctx, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	return u.RoleID == adminID, nil
}
