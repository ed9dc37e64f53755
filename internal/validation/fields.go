package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	passwordCharset = regexp.MustCompile(`^[a-zA-Z\d]{8,16}$`)
	urlPattern      = regexp.MustCompile(`^https://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(/.*)?$`)
	imageURLPattern = regexp.MustCompile(`(?i)^https://.+\.(jpg|jpeg|png|webp|gif|svg)(\?.*)?$`)
	phonePattern    = regexp.MustCompile(`^09\d{8}$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\x{4e00}-\x{9fa5}]{2,10}$`)
	zipcodePattern  = regexp.MustCompile(`^\d{3}$`)
	uuidPattern     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

const dateLayout = "2006-01-02"

// IsNonEmptyString reports whether v is a string with non-blank content.
func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsNonNegativeInteger accepts Go integer kinds, integral floats (what
// encoding/json produces for map targets) and json.Number.
func IsNonNegativeInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return err == nil && i >= 0
	case float64:
		return n >= 0 && n == math.Trunc(n) && !math.IsInf(n, 0)
	case float32:
		f := float64(n)
		return f >= 0 && f == math.Trunc(f) && !math.IsInf(f, 0)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() >= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsDate is a strict YYYY-MM-DD check; impossible calendar days fail.
func IsDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsPassword requires 8-16 ASCII letters or digits with at least one
// lowercase letter, one uppercase letter and one digit.
func IsPassword(s string) bool {
	if !passwordCharset.MatchString(s) {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

func IsURL(s string) bool      { return urlPattern.MatchString(s) }
func IsImageURL(s string) bool { return imageURLPattern.MatchString(s) }
func IsPhone(s string) bool    { return phonePattern.MatchString(s) }
func IsName(s string) bool     { return namePattern.MatchString(s) }
func IsZipcode(s string) bool  { return zipcodePattern.MatchString(s) }
func IsUUID(s string) bool     { return uuidPattern.MatchString(s) }

// IsArrayOfNonEmptyString accepts []string or a decoded []any whose
// elements are all non-blank strings. An empty slice passes.
func IsArrayOfNonEmptyString(v any) bool {
	return eachString(v, func(s string) bool { return strings.TrimSpace(s) != "" })
}

func IsArrayOfURL(v any) bool {
	return eachString(v, IsURL)
}

func eachString(v any, ok func(string) bool) bool {
	switch items := v.(type) {
	case []string:
		for _, s := range items {
			if !ok(s) {
				return false
			}
		}
		return true
	case []any:
		for _, item := range items {
			s, isString := item.(string)
			if !isString || !ok(s) {
				return false
			}
		}
		return true
	}
	return false
}
