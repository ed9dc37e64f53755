package validation

// Kind is the primitive shape a field must have.
type Kind string

const (
	KindString  Kind = "string"  // non-empty string
	KindNumber  Kind = "number"  // non-negative integer
	KindBoolean Kind = "boolean" // strict boolean
)

type Rule struct {
	Field string
	Kind  Kind
}

// RuleTable is ordered; ValidateFields reports failures in table order.
type RuleTable []Rule

var CouponRules = RuleTable{
	{"code", KindString},
	{"name", KindString},
	{"discount", KindNumber},
	{"quantity", KindNumber},
	{"distributed_quantity", KindNumber},
	{"start_at", KindString},
	{"end_at", KindString},
	{"is_available", KindBoolean},
}

var ProductRules = RuleTable{
	{"primary_image", KindString},
	{"name", KindString},
	{"category_id", KindString},
	{"condition_id", KindString},
	{"title", KindString},
	{"subtitle", KindString},
	{"is_available", KindBoolean},
	{"is_featured", KindBoolean},
	{"brand_id", KindString},
	{"original_price", KindNumber},
	{"selling_price", KindNumber},
}

var PagingRules = RuleTable{
	{"page", KindNumber},
	{"per", KindNumber},
}

var OrderStatusRules = RuleTable{
	{"status", KindString},
}

var AvailabilityRules = RuleTable{
	{"is_available", KindBoolean},
}
