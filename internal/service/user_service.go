package service

import (
	"context"

	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

const userSubject = "user"

type UserService struct {
	users  UserRepo
	roles  Roles
	events events.Publisher
}

func NewUserService(users UserRepo, roles Roles, pub events.Publisher) *UserService {
	return &UserService{users: users, roles: roles, events: pub}
}

// List pages through shoppers, i.e. users holding the "user" role.
func (s *UserService) List(ctx context.Context, q models.ListQuery) (models.Page[models.UserListItem], error) {
	roleID, err := s.roles.RoleID(ctx, models.RoleUser)
	if err != nil {
		return models.Page[models.UserListItem]{}, reject("users", "user role_id", err)
	}
	users, total, err := s.users.List(ctx, roleID, q)
	if err != nil {
		return models.Page[models.UserListItem]{}, reject("users", userSubject, err)
	}
	return models.NewPage(users, total, q.Per), nil
}

type BanResult struct {
	User    models.User
	Changed bool
	Message string
}

// SetBanned bans or unbans a user. Asking for the state the user is already
// in succeeds without writing and says so in the message.
func (s *UserService) SetBanned(ctx context.Context, in validation.BanToggleInput) (BanResult, error) {
	toggle, err := validation.ValidateBanToggle(in)
	if err != nil {
		return BanResult{}, reject("users", userSubject, err)
	}

	u, err := s.users.GetByID(ctx, toggle.UserID)
	if err != nil {
		return BanResult{}, reject("users", userSubject, err)
	}

	state := "active"
	if toggle.IsBanned {
		state = "banned"
	}

	if validation.ResolveBanToggle(u.IsBanned, toggle.IsBanned) == validation.BanAlreadySet {
		return BanResult{User: u, Message: "user is already " + state}, nil
	}

	updated, err := s.users.SetBanned(ctx, toggle.UserID, toggle.IsBanned)
	if err != nil {
		return BanResult{}, reject("users", userSubject, err)
	}

	publish(ctx, s.events, events.Event{Resource: "user", Action: state, ID: updated.ID.String(), ActorID: auth.ActorID(ctx)})
	return BanResult{User: updated, Changed: true, Message: "user status updated, user is now " + state}, nil
}
