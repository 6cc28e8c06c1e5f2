package sift

import (
	"context"

	"github.com/siftql/sift/filter"
)

// Session is the facade a search input drives: it holds the fixed field
// registry, accumulates committed conditions into a flat AND group, and
// filters row sets by the accumulated tree.
//
// The accumulated tree is an immutable value; every edit replaces it with a
// new tree and publishes the new root to change listeners. A Session is
// meant for a single UI session and is not safe for concurrent use; only
// option resolution runs in the background, and it never touches session
// state.
type Session struct {
	reg      *filter.Registry
	resolver *filter.Resolver
	logger   *Logger

	root      *filter.Group
	listeners []func(filter.Node)
}

// New creates a session over the given registry.
func New(reg *filter.Registry, opts ...Option) *Session {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{
		reg:    reg,
		logger: o.logger,
		resolver: filter.NewResolver(reg, filter.ResolverConfig{
			MaxInFlight:   o.maxLookups,
			LookupsPerSec: o.lookupsPerSec,
			Logger:        o.logger.Logger,
		}),
	}
}

// Registry returns the session's field registry.
func (s *Session) Registry() *filter.Registry {
	return s.reg
}

// Operators returns the operators permitted for the named field, for the
// input collaborator to offer after a field is chosen.
func (s *Session) Operators(fieldKey string) ([]filter.Operator, error) {
	return s.reg.Operators(fieldKey)
}

// ResolveOptions resolves enum/relation value options for a partial query,
// last-query-wins per field. See filter.Resolver.Lookup.
func (s *Session) ResolveOptions(ctx context.Context, fieldKey, query string, apply func([]string)) error {
	return s.resolver.Lookup(ctx, fieldKey, query, apply)
}

// OnChange registers a listener invoked with the current root after every
// commit, removal, and clear. The root is nil while no conditions are
// committed.
func (s *Session) OnChange(fn func(filter.Node)) {
	s.listeners = append(s.listeners, fn)
}

// Root returns the accumulated filter tree, or nil when no conditions are
// committed. The returned tree is an immutable snapshot; later edits to the
// session do not affect it.
func (s *Session) Root() filter.Node {
	if s.root == nil {
		return nil
	}
	return *s.root
}

// Len returns the number of committed conditions.
func (s *Session) Len() int {
	if s.root == nil {
		return 0
	}
	return len(s.root.Children)
}

// Commit validates a (field, operator, value) triple and appends it to the
// accumulated AND group. Fails with ErrUnknownField or ErrInvalidOperator;
// the raw value is never validated here.
func (s *Session) Commit(ctx context.Context, fieldKey string, op filter.Operator, raw string) error {
	cond, err := filter.NewCondition(s.reg, fieldKey, op, raw)
	s.logger.LogCommit(ctx, fieldKey, op, err)
	if err != nil {
		return err
	}

	group := filter.NewGroup(filter.And)
	if s.root != nil {
		group = *s.root
	}
	group = group.Append(cond)
	s.root = &group
	s.publish()
	return nil
}

// Remove drops the committed condition at index i, matching the removal of
// a displayed chip. Fails with ErrIndexOutOfRange. Removing the last
// condition resets the root to nil.
func (s *Session) Remove(ctx context.Context, i int) error {
	if s.root == nil {
		_, err := filter.Group{}.Remove(i)
		s.logger.LogRemove(ctx, i, 0, err)
		return err
	}

	group, err := s.root.Remove(i)
	if err != nil {
		s.logger.LogRemove(ctx, i, len(s.root.Children), err)
		return err
	}

	if len(group.Children) == 0 {
		s.root = nil
	} else {
		s.root = &group
	}
	s.logger.LogRemove(ctx, i, s.Len(), nil)
	s.publish()
	return nil
}

// Clear drops every committed condition, resetting the root to nil.
func (s *Session) Clear() {
	s.root = nil
	s.publish()
}

// Match reports whether a single record passes the accumulated filter.
func (s *Session) Match(rec filter.Record) bool {
	return filter.Evaluate(rec, s.Root())
}

// Apply filters rows by the accumulated tree, preserving their original
// relative order. With no committed conditions every row passes.
func (s *Session) Apply(ctx context.Context, rows []filter.Record) []filter.Record {
	out := filter.Apply(rows, s.Root())
	s.logger.LogApply(ctx, len(rows), len(out))
	return out
}

func (s *Session) publish() {
	root := s.Root()
	for _, fn := range s.listeners {
		fn(root)
	}
}
