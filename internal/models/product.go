package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle"`
	CategoryID    uuid.UUID       `json:"category_id"`
	ConditionID   uuid.UUID       `json:"condition_id"`
	BrandID       uuid.UUID       `json:"brand_id"`
	PrimaryImage  string          `json:"primary_image"`
	Images        []string        `json:"images"`
	Hashtags      []string        `json:"hashtags"`
	Summary       []string        `json:"summary"`
	Description   json.RawMessage `json:"description"`
	OriginalPrice int             `json:"original_price"`
	SellingPrice  int             `json:"selling_price"`
	IsAvailable   bool            `json:"is_available"`
	IsFeatured    bool            `json:"is_featured"`
	IsSold        bool            `json:"is_sold"`
	IsDeleted     bool            `json:"is_deleted"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductImage is a row of the product_images side table.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Image     string    `json:"image"`
}

// ProductListItem is the projection returned by the product list.
type ProductListItem struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	PrimaryImage string       `json:"primary_image"`
	SellingPrice int          `json:"selling_price"`
	Category     string       `json:"category"`
	Brand        string       `json:"brand"`
	Condition    string       `json:"condition"`
	State        ProductState `json:"state"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Lookup kinds referenced by a product.
type LookupKind string

const (
	LookupCategory  LookupKind = "category"
	LookupCondition LookupKind = "condition"
	LookupBrand     LookupKind = "brand"
)

func (k LookupKind) Table() string {
	switch k {
	case LookupCategory:
		return "categories"
	case LookupCondition:
		return "conditions"
	case LookupBrand:
		return "brands"
	}
	return ""
}
