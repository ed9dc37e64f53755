package validation

import (
	"sort"
	"strings"
)

// Error is a single user-facing validation failure.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Errors maps a field name to its message, for forms that report every
// failure at once.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
