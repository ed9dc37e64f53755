// Package respond writes the API's JSON envelope. Handlers and middleware
// both render through it.
package respond

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type Envelope struct {
	Status  bool              `json:"status"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Data(w http.ResponseWriter, code int, data any, message string) {
	JSON(w, code, Envelope{Status: true, Data: data, Message: message})
}

// Error renders err as {"status": false, "message": ...}. Anything that is
// not a known client error becomes a 500 and is logged.
func Error(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors
	var single validation.Error
	ae, ok := apperr.As(err)
	switch {
	case ok:
	case errors.As(err, &fieldErrs):
		ae = apperr.Invalid(validation.MsgFieldsIncorrect, fieldErrs)
	case errors.As(err, &single):
		ae = apperr.BadRequest(single.Error())
	default:
		ae = apperr.Internal(err)
	}

	if ae.Status >= http.StatusInternalServerError && ae.Err != nil {
		log.Printf("[http] %v", ae.Err)
	}
	JSON(w, ae.Status, Envelope{Status: false, Message: ae.Message, Errors: ae.Fields})
}
