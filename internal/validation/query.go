package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const (
	DefaultPage = 1
	DefaultPer  = 10
	MaxPer      = 100
)

// ParseListQuery reads page, per, name, keyword and merchant_order_no from a
// list endpoint's query string. Missing or zero page/per fall back to the
// defaults; anything else that is not a non-negative integer is rejected.
// Filters that are present must not be blank.
func ParseListQuery(values url.Values) (models.ListQuery, error) {
	raw := map[string]any{}
	nums := map[string]int{"page": DefaultPage, "per": DefaultPer}
	for _, key := range []string{"page", "per"} {
		s := strings.TrimSpace(values.Get(key))
		if s == "" {
			raw[key] = nums[key]
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			raw[key] = s
			continue
		}
		raw[key] = n
		if n > 0 {
			nums[key] = n
		}
	}
	if err := FieldsError(ValidateFields(raw, PagingRules)); err != nil {
		return models.ListQuery{}, err
	}
	if nums["per"] > MaxPer {
		nums["per"] = MaxPer
	}

	q := models.ListQuery{Page: nums["page"], Per: nums["per"]}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &q.Name},
		{"keyword", &q.Keyword},
		{"merchant_order_no", &q.MerchantOrderNo},
	} {
		if !values.Has(f.key) {
			continue
		}
		v := values.Get(f.key)
		if !IsNonEmptyString(v) {
			return models.ListQuery{}, Error(f.key + " " + MsgFieldsIncorrect)
		}
		*f.dst = strings.TrimSpace(v)
	}
	return q, nil
}

// ParseID checks a path parameter is a UUID.
func ParseID(field, raw string) (uuid.UUID, error) {
	if !IsUUID(raw) {
		return uuid.Nil, Error(field + " " + MsgFieldsIncorrect)
	}
	return uuid.MustParse(raw), nil
}
