package filter

import "fmt"

// NewCondition compiles a (field, operator, value) triple into a Condition
// validated against the registry.
//
// It fails with ErrUnknownField if the field is not registered and with
// ErrInvalidOperator if the operator is not permitted for the field's type.
// The raw value is accepted as-is: a non-numeric value on a number field
// still compiles, so the input collaborator can always commit and display
// whatever the user typed. Ill-formed values resolve at evaluation time.
func NewCondition(reg *Registry, fieldKey string, op Operator, raw string) (Condition, error) {
	f, err := reg.Field(fieldKey)
	if err != nil {
		return Condition{}, err
	}
	if !operatorAllowed(f.Type, op) {
		return Condition{}, fmt.Errorf("%w: %q on %s field %q", ErrInvalidOperator, op, f.Type, fieldKey)
	}
	return Condition{Field: fieldKey, Operator: op, Value: raw}, nil
}

// BuilderState identifies how far an in-progress condition has been
// assembled.
type BuilderState uint8

const (
	// StateIdle means no condition is being assembled.
	StateIdle BuilderState = iota
	// StateFieldChosen means a field has been chosen.
	StateFieldChosen
	// StateOperatorChosen means a field and an operator have been chosen;
	// the builder is ready to commit.
	StateOperatorChosen
)

// String returns the string representation of the BuilderState.
func (s BuilderState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFieldChosen:
		return "FieldChosen"
	case StateOperatorChosen:
		return "OperatorChosen"
	default:
		return "Unknown"
	}
}

// Builder assembles one condition at a time, walking the
// Idle → FieldChosen → OperatorChosen → commit → Idle transitions an input
// collaborator drives. Cancel resets to Idle from any state without
// touching any accumulated group.
type Builder struct {
	reg   *Registry
	state BuilderState
	field Field
	op    Operator
}

// NewBuilder creates a builder over the given registry.
func NewBuilder(reg *Registry) *Builder {
	return &Builder{reg: reg}
}

// State returns the current assembly state.
func (b *Builder) State() BuilderState {
	return b.state
}

// ChooseField selects the field for the next condition, moving the builder
// to FieldChosen. Fails with ErrUnknownField; choosing a new field replaces
// any earlier choice and discards a chosen operator.
func (b *Builder) ChooseField(key string) error {
	f, err := b.reg.Field(key)
	if err != nil {
		return err
	}
	b.field = f
	b.op = ""
	b.state = StateFieldChosen
	return nil
}

// Operators returns the operators permitted for the chosen field, or
// ErrNotReady before a field is chosen.
func (b *Builder) Operators() ([]Operator, error) {
	if b.state == StateIdle {
		return nil, fmt.Errorf("%w: no field chosen", ErrNotReady)
	}
	return AllowedOperators(b.field.Type), nil
}

// ChooseOperator selects the operator for the next condition, moving the
// builder to OperatorChosen. Fails with ErrNotReady before a field is
// chosen and with ErrInvalidOperator for an operator the field's type does
// not permit.
func (b *Builder) ChooseOperator(op Operator) error {
	if b.state == StateIdle {
		return fmt.Errorf("%w: no field chosen", ErrNotReady)
	}
	if !operatorAllowed(b.field.Type, op) {
		return fmt.Errorf("%w: %q on %s field %q", ErrInvalidOperator, op, b.field.Type, b.field.Key)
	}
	b.op = op
	b.state = StateOperatorChosen
	return nil
}

// Commit compiles the assembled condition with the given raw value,
// appends it to group, and resets the builder to Idle. The input group is
// never mutated. Fails with ErrNotReady unless an operator has been chosen.
func (b *Builder) Commit(raw string, group Group) (Group, error) {
	if b.state != StateOperatorChosen {
		return Group{}, fmt.Errorf("%w: in state %s", ErrNotReady, b.state)
	}
	cond, err := NewCondition(b.reg, b.field.Key, b.op, raw)
	if err != nil {
		return Group{}, err
	}
	b.Cancel()
	return group.Append(cond), nil
}

// Cancel resets the builder to Idle. It has no side effects on any
// accumulated group.
func (b *Builder) Cancel() {
	b.field = Field{}
	b.op = ""
	b.state = StateIdle
}
