package filter

import (
	"fmt"
	"time"
)

// Operator represents a comparison operator usable in a Condition.
//
// The string values are the raw tokens a search input produces, so a
// committed chip can be stored and replayed without translation.
type Operator string

const (
	// OpContains represents the case-insensitive substring operator.
	OpContains Operator = "contains"
	// OpEqual represents the equality operator.
	OpEqual Operator = "="
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "!="
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = ">"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = ">="
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "<"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "<="
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindNull represents a null or absent value.
	KindNull Kind = iota
	// KindString represents a string value.
	KindString
	// KindNumber represents a numeric value.
	KindNumber
	// KindBool represents a boolean value.
	KindBool
)

// Value is a small typed scalar used for record fields.
//
// The representation keeps evaluation fast and predictable: no reflection
// and no fmt-based stringification. Coercion between kinds happens only at
// evaluation time, under the rules documented on Evaluate.
type Value struct {
	Kind Kind
	S    string
	N    float64
	B    bool
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Number returns a numeric Value.
func Number(v float64) Value { return Value{Kind: KindNumber, N: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for callers holding untyped row data,
// e.g. rows decoded from JSON. Dates are carried as YYYY-MM-DD strings.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case time.Time:
		return String(x.Format(dateLayout)), nil
	default:
		return Value{}, fmt.Errorf("unsupported record value type %T", v)
	}
}

// Record is an opaque row: a mapping from field key to a typed scalar.
//
// The evaluator assumes nothing about a record's shape beyond the fields a
// filter references; a missing field reads as the null Value.
type Record map[string]Value

// RecordFromAny converts an untyped map into a Record.
func RecordFromAny(m map[string]any) (Record, error) {
	if m == nil {
		return nil, nil
	}
	rec := make(Record, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		rec[k] = vv
	}
	return rec, nil
}

// Clone creates a copy of the record.
//
// This is the safe default to prevent external mutation after a row set has
// been handed to the library. Values are scalars, so a shallow copy of the
// map is a full copy.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}
