package validation

import (
	"reflect"
	"strings"
)

// ValidateFields checks each rule of table against values and returns the
// names of the failing fields in table order, or nil when all pass. Absent
// keys, nil values and nil pointers count as missing; non-nil pointers are
// dereferenced before the check.
func ValidateFields(values map[string]any, table RuleTable) []string {
	var failed []string
	for _, rule := range table {
		v, ok := deref(values[rule.Field])
		if !ok || !matches(v, rule.Kind) {
			failed = append(failed, rule.Field)
		}
	}
	return failed
}

// FieldsError joins failed field names into a single validation error.
func FieldsError(failed []string) error {
	if len(failed) == 0 {
		return nil
	}
	return Error(strings.Join(failed, ", ") + " " + MsgFieldsIncorrect)
}

func matches(v any, kind Kind) bool {
	switch kind {
	case KindString:
		return IsNonEmptyString(v)
	case KindNumber:
		return IsNonNegativeInteger(v)
	case KindBoolean:
		return IsBoolean(v)
	}
	return false
}

func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}
