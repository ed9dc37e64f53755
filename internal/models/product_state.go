package models

import "errors"

type ProductState string

const (
	ProductActive   ProductState = "active"
	ProductDelisted ProductState = "delisted"
	ProductSold     ProductState = "sold"
	ProductDeleted  ProductState = "deleted"
)

var (
	ErrProductDeleted       = errors.New("product has been deleted")
	ErrProductDelisted      = errors.New("product has been delisted")
	ErrProductSoldOut       = errors.New("product is sold out")
	ErrProductAlreadyListed = errors.New("product is already listed")
)

// State folds the soft-state flags into one value. Deletion wins over
// delisting, and delisting over sold.
func (p Product) State() ProductState {
	switch {
	case p.IsDeleted:
		return ProductDeleted
	case !p.IsAvailable:
		return ProductDelisted
	case p.IsSold:
		return ProductSold
	}
	return ProductActive
}

// CheckGate returns the first blocking condition in the order deleted,
// delisted, sold, or nil for an active product.
func CheckGate(p Product) error {
	if p.IsDeleted {
		return ErrProductDeleted
	}
	if !p.IsAvailable {
		return ErrProductDelisted
	}
	if p.IsSold {
		return ErrProductSoldOut
	}
	return nil
}

// Delist takes an active product off the shelf.
func Delist(p *Product) error {
	if err := CheckGate(*p); err != nil {
		return err
	}
	p.IsAvailable = false
	return nil
}

// Relist puts a delisted product back. Deleted and sold products stay put.
func Relist(p *Product) error {
	switch {
	case p.IsDeleted:
		return ErrProductDeleted
	case p.IsSold:
		return ErrProductSoldOut
	case p.IsAvailable:
		return ErrProductAlreadyListed
	}
	p.IsAvailable = true
	return nil
}

// SoftDelete marks the product deleted. There is no way back.
func SoftDelete(p *Product) error {
	if p.IsDeleted {
		return ErrProductDeleted
	}
	p.IsDeleted = true
	return nil
}
