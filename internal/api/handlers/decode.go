package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object into dst. Unknown fields, trailing
// data and oversized bodies are client errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.BadRequest(validation.MsgFieldsIncorrect)
	}
	if dec.More() {
		return apperr.BadRequest(validation.MsgFieldsIncorrect)
	}
	return nil
}
