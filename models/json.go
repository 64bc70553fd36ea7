package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Optional is a JSON field that remembers whether it was present in the
// request body. An explicit null sets both Set and Null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Null, o.Value = true, zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// Arg returns the value to bind for a column assignment: nil for an explicit
// null, the value otherwise.
func (o Optional[T]) Arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}

// JSONColumn stores T as JSON text. NULL, empty or unparseable text decodes
// to the zero value of T; decoding never fails.
type JSONColumn[T any] struct {
	V T
}

// JSON wraps v for binding as a query argument.
func JSON[T any](v T) JSONColumn[T] { return JSONColumn[T]{V: v} }

// Value encodes V. A value that encodes to JSON null is stored as SQL NULL.
func (c JSONColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("encoding json column: %w", err)
	}
	if bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	return string(b), nil
}

func (c *JSONColumn[T]) Scan(src any) error {
	var zero T
	c.V = zero

	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		slog.Warn("unexpected json column type, using empty value", "type", fmt.Sprintf("%T", src))
		return nil
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Warn("unparseable json column, using empty value", "error", err)
		return nil
	}
	c.V = out
	return nil
}

// IDSet is the serialized membership list of a settlement. Order carries no
// meaning; duplicates are dropped on normalization.
type IDSet []string

// Normalize returns the set without blanks and duplicates, keeping first
// occurrence order, and never nil.
func (s IDSet) Normalize() IDSet {
	out := make(IDSet, 0, len(s))
	seen := make(map[string]struct{}, len(s))
	for _, id := range s {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s IDSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Record is a JSON object frozen by the client at settlement time, such as
// one distribution, one absorbed expense or the last bank receipt. It is kept
// byte for byte so every key survives storage, including ones this server
// does not know about.
type Record json.RawMessage

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *Record) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = nil
		return nil
	}
	*r = append((*r)[:0], b...)
	return nil
}

// IsObject reports whether r holds a JSON object.
func (r Record) IsObject() bool {
	b := bytes.TrimSpace(r)
	return len(b) > 0 && b[0] == '{'
}

// Decode unmarshals r into v.
func (r Record) Decode(v any) error {
	return json.Unmarshal(r, v)
}

func allObjects(records []Record) bool {
	for _, r := range records {
		if !r.IsObject() {
			return false
		}
	}
	return true
}
