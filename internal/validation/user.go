package validation

import (
	"encoding/json"

	"github.com/google/uuid"
)

// BanToggleInput is the body of the user permission endpoint. is_banned is
// kept raw so a string such as "true" is rejected instead of coerced.
type BanToggleInput struct {
	UserID   *string         `json:"id"`
	IsBanned json.RawMessage `json:"is_banned"`
}

type BanToggle struct {
	UserID   uuid.UUID
	IsBanned bool
}

func ValidateBanToggle(in BanToggleInput) (BanToggle, error) {
	var banned any
	if len(in.IsBanned) == 0 || json.Unmarshal(in.IsBanned, &banned) != nil || !IsBoolean(banned) {
		return BanToggle{}, Error(MsgIsBannedNotBoolean)
	}
	if in.UserID == nil || !IsUUID(*in.UserID) {
		return BanToggle{}, Error("id " + MsgFieldsIncorrect)
	}
	return BanToggle{UserID: uuid.MustParse(*in.UserID), IsBanned: banned.(bool)}, nil
}

// BanOutcome tells the caller whether the toggle wrote anything.
type BanOutcome int

const (
	BanUpdated BanOutcome = iota
	BanAlreadySet
)

// ResolveBanToggle compares the requested flag with the stored one. A no-op
// is a successful outcome, not an error.
func ResolveBanToggle(current, requested bool) BanOutcome {
	if current == requested {
		return BanAlreadySet
	}
	return BanUpdated
}
