package validation

import (
	"bytes"
	"encoding/json"
)

type attrDomain struct {
	kind  string // "boolean", "string", "number" or "enum"
	allow []any
}

var quillAttributes = map[string]attrDomain{
	"bold":       {kind: "boolean"},
	"italic":     {kind: "boolean"},
	"underline":  {kind: "boolean"},
	"strike":     {kind: "boolean"},
	"code":       {kind: "boolean"},
	"blockquote": {kind: "boolean"},
	"color":      {kind: "string"},
	"background": {kind: "string"},
	"font":       {kind: "string"},
	"size":       {kind: "string"},
	"link":       {kind: "string"},
	"indent":     {kind: "number"},
	"script":     {kind: "enum", allow: []any{"sub", "super"}},
	"header":     {kind: "enum", allow: []any{"1", "2", "3", "4", "5", "6", true}},
	"list":       {kind: "enum", allow: []any{"ordered", "bullet", "checked", "unchecked"}},
	"align":      {kind: "enum", allow: []any{"right", "center", "justify"}},
	"direction":  {kind: "enum", allow: []any{"rtl"}},
}

// DecodeDelta parses raw JSON into the generic form used for validation and
// comparison. Numbers stay json.Number so equality is exact.
func DecodeDelta(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateQuillDelta checks raw against the Quill Delta shape: an object
// with a non-empty ops array, every op carrying an insert that is a string
// or {"image": string}, and optional attributes limited to the known keys
// and value domains.
func ValidateQuillDelta(raw json.RawMessage) error {
	invalid := Error("description " + MsgInvalidQuillDelta)
	if len(bytes.TrimSpace(raw)) == 0 {
		return invalid
	}
	doc, err := DecodeDelta(raw)
	if err != nil {
		return invalid
	}
	if !IsQuillDelta(doc) {
		return invalid
	}
	return nil
}

// IsQuillDelta is the predicate behind ValidateQuillDelta for an already
// decoded document.
func IsQuillDelta(doc any) bool {
	obj, ok := doc.(map[string]any)
	if !ok {
		return false
	}
	ops, ok := obj["ops"].([]any)
	if !ok || len(ops) == 0 {
		return false
	}

	for _, item := range ops {
		op, ok := item.(map[string]any)
		if !ok {
			return false
		}
		insert, present := op["insert"]
		if !present || !validInsert(insert) {
			return false
		}
		if attrs, present := op["attributes"]; present && !validAttributes(attrs) {
			return false
		}
	}
	return true
}

func validInsert(v any) bool {
	switch ins := v.(type) {
	case string:
		return true
	case map[string]any:
		img, ok := ins["image"].(string)
		return ok && img != ""
	}
	return false
}

func validAttributes(v any) bool {
	attrs, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for key, value := range attrs {
		domain, known := quillAttributes[key]
		if !known || !domain.accepts(value) {
			return false
		}
	}
	return true
}

func (d attrDomain) accepts(v any) bool {
	switch d.kind {
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		switch v.(type) {
		case json.Number, float64:
			return true
		}
		return false
	case "enum":
		for _, a := range d.allow {
			if a == v {
				return true
			}
		}
	}
	return false
}
