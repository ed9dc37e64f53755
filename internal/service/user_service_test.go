package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

var (
	adminRole = uuid.New()
	userRole  = uuid.New()
	roles     = fakeRoles{models.RoleAdmin: adminRole, models.RoleUser: userRole}
)

func TestUserListOnlyShoppers(t *testing.T) {
	users := newFakeUserRepo(
		models.User{ID: uuid.New(), RoleID: userRole, Email: "a@example.com"},
		models.User{ID: uuid.New(), RoleID: adminRole, Email: "root@example.com"},
	)
	s := NewUserService(users, roles, &fakePublisher{})

	page, err := s.List(context.Background(), models.ListQuery{Page: 1, Per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || page.Items[0].Email != "a@example.com" {
		t.Fatalf("got %+v", page)
	}

	_, err = NewUserService(users, fakeRoles{}, &fakePublisher{}).List(context.Background(), models.ListQuery{Page: 1, Per: 10})
	wantStatus(t, err, http.StatusInternalServerError, "")
}

func TestUserSetBanned(t *testing.T) {
	u := models.User{ID: uuid.New(), RoleID: userRole}
	users, pub := newFakeUserRepo(u), &fakePublisher{}
	s := NewUserService(users, roles, pub)
	ctx := context.Background()
	in := validation.BanToggleInput{UserID: strp(u.ID.String()), IsBanned: json.RawMessage(`true`)}

	res, err := s.SetBanned(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed || !res.User.IsBanned || res.Message != "user status updated, user is now banned" {
		t.Fatalf("got %+v", res)
	}

	res, err = s.SetBanned(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed || res.Message != "user is already banned" || users.sets != 1 {
		t.Fatalf("no-op toggle: %+v sets=%d", res, users.sets)
	}

	if a := pub.actions(); len(a) != 1 || a[0] != "user:banned" {
		t.Fatalf("events = %v", a)
	}
}

func TestUserSetBannedErrors(t *testing.T) {
	s := NewUserService(newFakeUserRepo(), roles, &fakePublisher{})
	ctx := context.Background()

	_, err := s.SetBanned(ctx, validation.BanToggleInput{UserID: strp(uuid.NewString()), IsBanned: json.RawMessage(`"yes"`)})
	wantStatus(t, err, http.StatusBadRequest, validation.MsgIsBannedNotBoolean)

	_, err = s.SetBanned(ctx, validation.BanToggleInput{UserID: strp(uuid.NewString()), IsBanned: json.RawMessage(`false`)})
	wantStatus(t, err, http.StatusNotFound, "user "+validation.MsgDataNotFound)
}
