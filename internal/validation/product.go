package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/models"
)

const (
	MaxProductName     = 100
	MaxProductTitle    = 50
	MaxProductSubtitle = 50
	MaxProductImages   = 5
)

// ProductInput is the request body for creating or replacing a product.
type ProductInput struct {
	PrimaryImage  *string         `json:"primary_image"`
	Images        []string        `json:"images"`
	Name          *string         `json:"name"`
	CategoryID    *string         `json:"category_id"`
	ConditionID   *string         `json:"condition_id"`
	BrandID       *string         `json:"brand_id"`
	Title         *string         `json:"title"`
	Subtitle      *string         `json:"subtitle"`
	Summary       []string        `json:"summary"`
	Hashtags      []string        `json:"hashtags"`
	Description   json.RawMessage `json:"description"`
	IsAvailable   *bool           `json:"is_available"`
	IsFeatured    *bool           `json:"is_featured"`
	OriginalPrice *int            `json:"original_price"`
	SellingPrice  *int            `json:"selling_price"`
}

func (in ProductInput) fields() map[string]any {
	return map[string]any{
		"primary_image":  in.PrimaryImage,
		"name":           in.Name,
		"category_id":    in.CategoryID,
		"condition_id":   in.ConditionID,
		"title":          in.Title,
		"subtitle":       in.Subtitle,
		"is_available":   in.IsAvailable,
		"is_featured":    in.IsFeatured,
		"brand_id":       in.BrandID,
		"original_price": in.OriginalPrice,
		"selling_price":  in.SellingPrice,
	}
}

// ValidateProductPayload checks the shape of a product body and returns the
// normalized product. It stops at the first failing rule. Whether the
// referenced category, condition and brand exist is left to the caller.
func ValidateProductPayload(in ProductInput) (models.Product, error) {
	if err := FieldsError(ValidateFields(in.fields(), ProductRules)); err != nil {
		return models.Product{}, err
	}
	if in.Summary == nil || !IsArrayOfNonEmptyString(in.Summary) {
		return models.Product{}, Error("summary " + MsgFieldsIncorrect)
	}
	if err := ValidateQuillDelta(in.Description); err != nil {
		return models.Product{}, err
	}
	// surrounding spaces are not part of a URL
	primary := strings.TrimSpace(*in.PrimaryImage)
	images := trimAll(in.Images)
	if !IsURL(primary) {
		return models.Product{}, Error("primary_image " + MsgURLIncorrect)
	}
	if in.Images != nil && !IsArrayOfURL(images) {
		return models.Product{}, Error("images " + MsgURLIncorrect)
	}
	if in.Hashtags != nil && !IsArrayOfNonEmptyString(in.Hashtags) {
		return models.Product{}, Error("hashtags " + MsgFieldsIncorrect)
	}

	if utf8.RuneCountInString(*in.Name) > MaxProductName {
		return models.Product{}, lengthError("name", MaxProductName)
	}
	if utf8.RuneCountInString(*in.Title) > MaxProductTitle {
		return models.Product{}, lengthError("title", MaxProductTitle)
	}
	if utf8.RuneCountInString(*in.Subtitle) > MaxProductSubtitle {
		return models.Product{}, lengthError("subtitle", MaxProductSubtitle)
	}
	if len(in.Images) > MaxProductImages {
		return models.Product{}, Error(MsgProductImagesOverFive)
	}

	ids := make(map[string]uuid.UUID, 3)
	for _, f := range []struct {
		name  string
		value string
	}{
		{"category_id", *in.CategoryID},
		{"condition_id", *in.ConditionID},
		{"brand_id", *in.BrandID},
	} {
		if !IsUUID(f.value) {
			return models.Product{}, Error(f.name + " " + MsgFieldsIncorrect)
		}
		ids[f.name] = uuid.MustParse(f.value)
	}

	return models.Product{
		PrimaryImage:  primary,
		Images:        images,
		Name:          *in.Name,
		CategoryID:    ids["category_id"],
		ConditionID:   ids["condition_id"],
		BrandID:       ids["brand_id"],
		Title:         *in.Title,
		Subtitle:      *in.Subtitle,
		Summary:       in.Summary,
		Hashtags:      nonNil(in.Hashtags),
		Description:   in.Description,
		IsAvailable:   *in.IsAvailable,
		IsFeatured:    *in.IsFeatured,
		OriginalPrice: *in.OriginalPrice,
		SellingPrice:  *in.SellingPrice,
	}, nil
}

// AvailabilityInput is the body of the delist/relist endpoint.
type AvailabilityInput struct {
	IsAvailable *bool `json:"is_available"`
}

func ValidateAvailability(in AvailabilityInput) (bool, error) {
	if err := FieldsError(ValidateFields(map[string]any{"is_available": in.IsAvailable}, AvailabilityRules)); err != nil {
		return false, err
	}
	return *in.IsAvailable, nil
}

func lengthError(field string, max int) error {
	return Error(fmt.Sprintf("%s %s %d", field, MsgLimitStringLength, max))
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
