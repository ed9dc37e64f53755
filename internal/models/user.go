package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id"`
	RoleID          uuid.UUID  `json:"role_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Photo           *string    `json:"photo"`
	Phone           string     `json:"phone"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	AddressZipcode  string     `json:"address_zipcode"`
	AddressDistrict string     `json:"address_district"`
	AddressDetail   string     `json:"address_detail"`
	IsBanned        bool       `json:"is_banned"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserListItem is the projection used by the user list.
type UserListItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Photo    *string   `json:"photo"`
	IsBanned bool      `json:"is_banned"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
