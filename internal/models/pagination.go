package models

// ListQuery carries paging and filters for list endpoints. Name is an exact
// match, Keyword a substring search over the resource's searchable columns.
type ListQuery struct {
	Page            int
	Per             int
	Name            string
	Keyword         string
	MerchantOrderNo string
}

func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Per
}

// Page is one page of a list plus the totals the admin UI needs.
type Page[T any] struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Items      []T `json:"items"`
}

func NewPage[T any](items []T, total, per int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if per > 0 {
		pages = (total + per - 1) / per
	}
	return Page[T]{Total: total, TotalPages: pages, Items: items}
}
