package filter

import "fmt"

// Combinator joins a group's children into a single boolean result.
type Combinator string

const (
	// And matches when every child matches; an empty group matches.
	And Combinator = "and"
	// Or matches when any child matches; an empty group does not match.
	Or Combinator = "or"
)

// Node is a node in a compiled filter tree: either a Condition leaf or a
// Group of children. Trees are acyclic values; edits copy, never mutate.
type Node interface {
	isNode()
}

// Condition compares one record field against a raw value.
//
// Value always holds the raw user input as a string, even for number and
// date fields. Format problems never fail compilation; they surface as
// boolean results at evaluation time.
type Condition struct {
	Field    string
	Operator Operator
	Value    string
}

func (Condition) isNode() {}

// Group combines child nodes with a boolean combinator.
type Group struct {
	Combinator Combinator
	Children   []Node
}

func (Group) isNode() {}

// NewGroup creates a group over the given children.
func NewGroup(c Combinator, children ...Node) Group {
	return Group{Combinator: c, Children: children}
}

// Append returns a copy of g with child appended to the end of its
// children. The receiver is never mutated; holders of the old tree keep an
// unchanged snapshot.
func (g Group) Append(child Node) Group {
	children := make([]Node, len(g.Children)+1)
	copy(children, g.Children)
	children[len(g.Children)] = child
	return Group{Combinator: g.Combinator, Children: children}
}

// Remove returns a copy of g without the child at index i, or
// ErrIndexOutOfRange if i does not address an existing child.
func (g Group) Remove(i int) (Group, error) {
	if i < 0 || i >= len(g.Children) {
		return Group{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(g.Children))
	}
	children := make([]Node, 0, len(g.Children)-1)
	children = append(children, g.Children[:i]...)
	children = append(children, g.Children[i+1:]...)
	return Group{Combinator: g.Combinator, Children: children}, nil
}
