package odata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Entity is a single row of an entity set, keyed by property name.
type Entity map[string]json.RawMessage

// Element binds one entity property to a field of T.
type Element[T any] struct {
	Name string
	bind func(dst *T, raw json.RawMessage) error
}

// StringElement binds the property name to the string field returned by field.
func StringElement[T any](name string, field func(*T) *string) Element[T] {
	return Element[T]{
		Name: name,
		bind: func(dst *T, raw json.RawMessage) error {
			if isNull(raw) {
				return nil
			}
			return json.Unmarshal(raw, field(dst))
		},
	}
}

// IntElement binds the property name to the int field returned by field.
// Edm.Int64 values arrive as JSON strings in V2 payloads, so numeric strings
// are accepted as well as numbers.
func IntElement[T any](name string, field func(*T) *int) Element[T] {
	return Element[T]{
		Name: name,
		bind: func(dst *T, raw json.RawMessage) error {
			if isNull(raw) {
				return nil
			}

			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			var v any
			if err := dec.Decode(&v); err != nil {
				return err
			}

			var s string
			switch t := v.(type) {
			case json.Number:
				s = t.String()
			case string:
				s = t
			default:
				return fmt.Errorf("cannot bind %s to int", raw)
			}

			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			*field(dst) = n
			return nil
		},
	}
}

// Mapping is the element table of a record type. It provides both the
// $select list and the decoding of result rows.
type Mapping[T any] []Element[T]

// Names returns the property names in table order.
func (m Mapping[T]) Names() []string {
	names := make([]string, len(m))
	for i, el := range m {
		names[i] = el.Name
	}
	return names
}

// Decode maps entities into records, preserving order. Properties missing
// from an entity leave the field at its zero value. Failures are a
// *QueryError carrying a stack trace.
func (m Mapping[T]) Decode(entities []Entity) ([]T, error) {
	records := make([]T, 0, len(entities))
	for i, entity := range entities {
		var rec T
		for _, el := range m {
			raw, ok := entity[el.Name]
			if !ok {
				continue
			}
			if err := el.bind(&rec, raw); err != nil {
				return nil, errors.WithStack(&QueryError{
					Message: fmt.Sprintf("failed to map element %s of entity %d", el.Name, i),
					Err:     err,
				})
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
