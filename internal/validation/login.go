package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]func(string) bool{
		"password": IsPassword,
		"twname":   IsName,
		"twphone":  IsPhone,
		"zipcode":  IsZipcode,
	} {
		check := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

var fieldMessages = map[string]string{
	"email":    MsgEmailNotRule,
	"password": MsgPasswordNotRule,
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type AddressInput struct {
	Zipcode       string `json:"zipcode" validate:"required,zipcode"`
	District      string `json:"district" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
}

type SignupInput struct {
	Name     string        `json:"name" validate:"required,twname"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,password"`
	Phone    string        `json:"phone" validate:"required,twphone"`
	Address  *AddressInput `json:"address" validate:"omitempty"`
}

// ValidateLogin reports every failing field at once as Errors.
func ValidateLogin(in LoginInput) error {
	return structErrors(in)
}

// ValidateSignup reports every failing field at once as Errors. The address
// block is optional, but when present all of its parts are required.
// Shopper registration lives in the storefront API; this is the shared rule
// set it validates against.
func ValidateSignup(in SignupInput) error {
	return structErrors(in)
}

func structErrors(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Error(MsgFieldsIncorrect)
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := fieldMessages[field]
		if !ok {
			msg = MsgFieldsIncorrect
		}
		out[field] = msg
	}
	return out.orNil()
}
