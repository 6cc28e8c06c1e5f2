package filter

import "fmt"

// FieldType defines the primitive type of a filterable field.
type FieldType uint8

const (
	// TypeString represents a free-text field.
	TypeString FieldType = iota
	// TypeNumber represents a numeric field.
	TypeNumber
	// TypeDate represents a calendar date field (YYYY-MM-DD).
	TypeDate
	// TypeBool represents a boolean field.
	TypeBool
	// TypeEnum represents a field with a fixed set of legal values.
	TypeEnum
	// TypeRelation represents a field whose legal values come from a lookup.
	TypeRelation
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeDate:
		return "Date"
	case TypeBool:
		return "Bool"
	case TypeEnum:
		return "Enum"
	case TypeRelation:
		return "Relation"
	default:
		return "Unknown"
	}
}

// Field describes a filterable attribute: its unique key, a display label
// for the input collaborator, its primitive type, and, for enum and
// relation fields, the source of legal values.
type Field struct {
	Key     string
	Label   string
	Type    FieldType
	Options OptionSource
}

// Registry is a fixed catalogue of filterable fields, built once at startup
// and read-only for the life of a search session.
type Registry struct {
	fields map[string]Field
	keys   []string
}

// NewRegistry creates a registry from the given fields. A later field with
// a duplicate key replaces the earlier one.
func NewRegistry(fields ...Field) *Registry {
	r := &Registry{
		fields: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		if _, exists := r.fields[f.Key]; !exists {
			r.keys = append(r.keys, f.Key)
		}
		r.fields[f.Key] = f
	}
	return r
}

// Field returns the descriptor for key, or ErrUnknownField.
func (r *Registry) Field(key string) (Field, error) {
	f, ok := r.fields[key]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return f, nil
}

// Keys returns the field keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Operators returns the operators permitted for the named field,
// or ErrUnknownField.
func (r *Registry) Operators(key string) ([]Operator, error) {
	f, err := r.Field(key)
	if err != nil {
		return nil, err
	}
	return AllowedOperators(f.Type), nil
}

// Validate walks a filter tree and reports the first condition referencing
// an unknown field or an operator not allowed for its field's type.
//
// The AST itself permits invalid combinations; validation is the compiler's
// and the caller's concern, never the evaluator's.
func (r *Registry) Validate(node Node) error {
	switch n := node.(type) {
	case nil:
		return nil
	case Condition:
		f, err := r.Field(n.Field)
		if err != nil {
			return err
		}
		if !operatorAllowed(f.Type, n.Operator) {
			return fmt.Errorf("%w: %q on %s field %q", ErrInvalidOperator, n.Operator, f.Type, n.Field)
		}
		return nil
	case Group:
		for _, child := range n.Children {
			if err := r.Validate(child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported node type %T", node)
	}
}

// AllowedOperators returns the operators permitted for a field type.
//
// The mapping is fixed: strings support substring and (in)equality, numbers
// and dates support (in)equality and ordering, and bool, enum and relation
// fields support (in)equality only.
func AllowedOperators(t FieldType) []Operator {
	switch t {
	case TypeString:
		return []Operator{OpContains, OpEqual, OpNotEqual}
	case TypeNumber, TypeDate:
		return []Operator{OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual}
	case TypeBool, TypeEnum, TypeRelation:
		return []Operator{OpEqual, OpNotEqual}
	default:
		return nil
	}
}

func operatorAllowed(t FieldType, op Operator) bool {
	for _, allowed := range AllowedOperators(t) {
		if op == allowed {
			return true
		}
	}
	return false
}
