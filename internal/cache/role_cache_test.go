package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRoleIDLoadsOnce(t *testing.T) {
	adminID := uuid.New()
	calls := 0
	c := NewRoleCache(func(ctx context.Context, name string) (uuid.UUID, error) {
		calls++
		return adminID, nil
	})

	for i := 0; i < 3; i++ {
		id, err := c.RoleID(context.Background(), "admin")
		if err != nil || id != adminID {
			t.Fatalf("got %v %v", id, err)
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times", calls)
	}
}

func TestRoleIDDoesNotCacheFailures(t *testing.T) {
	fail := true
	want := uuid.New()
	c := NewRoleCache(func(ctx context.Context, name string) (uuid.UUID, error) {
		if fail {
			return uuid.Nil, errors.New("db down")
		}
		return want, nil
	})

	if _, err := c.RoleID(context.Background(), "user"); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := c.Get("user"); ok {
		t.Fatal("failure was cached")
	}

	fail = false
	id, err := c.RoleID(context.Background(), "user")
	if err != nil || id != want {
		t.Fatalf("got %v %v", id, err)
	}
}

func TestSetPrimesCache(t *testing.T) {
	c := NewRoleCache(func(ctx context.Context, name string) (uuid.UUID, error) {
		t.Fatal("loader should not run")
		return uuid.Nil, nil
	})
	id := uuid.New()
	c.Set("admin", id)
	got, err := c.RoleID(context.Background(), "admin")
	if err != nil || got != id {
		t.Fatalf("got %v %v", got, err)
	}
}
