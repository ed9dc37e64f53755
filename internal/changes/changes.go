// Package changes decides whether an update request would leave the stored
// record as it is.
package changes

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

// CouponUnchanged compares every writable coupon field. Times are compared
// as instants.
func CouponUnchanged(persisted, candidate models.Coupon) bool {
	return persisted.Code == candidate.Code &&
		persisted.Name == candidate.Name &&
		persisted.Discount == candidate.Discount &&
		persisted.Quantity == candidate.Quantity &&
		persisted.DistributedQuantity == candidate.DistributedQuantity &&
		persisted.StartAt.Equal(candidate.StartAt) &&
		persisted.EndAt.Equal(candidate.EndAt) &&
		persisted.IsAvailable == candidate.IsAvailable
}

// ProductUnchanged compares the stored product and its image rows with the
// candidate. Summary, hashtags and images are treated as sets.
func ProductUnchanged(persisted models.Product, candidate models.Product, images []models.ProductImage) bool {
	if persisted.PrimaryImage != candidate.PrimaryImage ||
		persisted.Name != candidate.Name ||
		persisted.CategoryID != candidate.CategoryID ||
		persisted.ConditionID != candidate.ConditionID ||
		persisted.Title != candidate.Title ||
		persisted.Subtitle != candidate.Subtitle ||
		persisted.IsAvailable != candidate.IsAvailable ||
		persisted.IsFeatured != candidate.IsFeatured ||
		persisted.BrandID != candidate.BrandID ||
		persisted.OriginalPrice != candidate.OriginalPrice ||
		persisted.SellingPrice != candidate.SellingPrice {
		return false
	}

	if !SameDescription(persisted.Description, candidate.Description) {
		return false
	}
	if !SameStringSet(persisted.Summary, candidate.Summary) ||
		!SameStringSet(persisted.Hashtags, candidate.Hashtags) {
		return false
	}

	stored := make([]string, 0, len(images))
	for _, img := range images {
		stored = append(stored, img.Image)
	}
	return SameStringSet(stored, candidate.Images)
}

func OrderStatusUnchanged(current, requested models.OrderStatus) bool {
	return current == requested
}

// SameStringSet reports whether a and b hold the same strings regardless of
// order and surrounding whitespace. Duplicates count.
func SameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := sortedTrimmed(a), sortedTrimmed(b)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// SameDescription compares two Quill documents structurally, so key order
// and formatting in the stored JSON do not matter.
func SameDescription(a, b []byte) bool {
	if bytes.Equal(a, b) {
		return true
	}
	x, errA := decode(a)
	y, errB := decode(b)
	if errA != nil || errB != nil {
		return false
	}
	return reflect.DeepEqual(x, y)
}

func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	err := dec.Decode(&v)
	return v, err
}

func sortedTrimmed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	sort.Strings(out)
	return out
}
