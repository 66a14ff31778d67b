package kernel

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"kioskhub/internal/pkg/errs"
)

var docJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is an opaque structured JSON object carried through the backend
// without schema validation. A nil Document maps to SQL NULL and JSON null.
// Only the top-level shape is enforced: it must be a JSON object, never an
// array or a scalar.
type Document map[string]any

// ParseDocument validates the top-level shape of a raw JSON value and decodes
// it. JSON null yields a nil Document. Arrays and scalars are rejected.
func ParseDocument(paramName string, raw []byte) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("must be a JSON object or null"))
	}

	var doc Document
	if err := docJSON.Unmarshal(trimmed, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return doc, nil
}

// Field returns the value stored under key, or nil when the document itself
// is nil or the key is absent.
func (d Document) Field(key string) any {
	if d == nil {
		return nil
	}
	return d[key]
}

// SameField reports whether two documents carry the same value under key.
// Both values absent counts as equal. Values are compared as decoded JSON,
// so a number and a numeric string are distinct.
func SameField(a, b Document, key string) bool {
	return reflect.DeepEqual(a.Field(key), b.Field(key))
}

// Value implements driver.Valuer, serializing the document to JSONB.
func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return docJSON.Marshal(map[string]any(d))
}

// Scan implements sql.Scanner for JSONB columns.
func (d *Document) Scan(src any) error {
	if src == nil {
		*d = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Document", src)
	}

	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		*d = nil
		return nil
	}
	return docJSON.Unmarshal(raw, d)
}
