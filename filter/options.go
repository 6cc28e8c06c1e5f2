package filter

import (
	"context"
	"strings"
)

// OptionSource enumerates the legal values for an enum or relation field,
// narrowed by a partial query string. Implementations may answer from a
// fixed list or from a lookup, synchronously or not; the Resolver handles
// sequencing when lookups race.
type OptionSource interface {
	Options(ctx context.Context, query string) ([]string, error)
}

// StaticOptions is a fixed option list. An empty query returns the whole
// list; otherwise options are narrowed by case-insensitive substring match.
type StaticOptions []string

// Options implements OptionSource.
func (s StaticOptions) Options(_ context.Context, query string) ([]string, error) {
	if query == "" {
		return append([]string(nil), s...), nil
	}
	q := strings.ToLower(query)
	var out []string
	for _, opt := range s {
		if strings.Contains(strings.ToLower(opt), q) {
			out = append(out, opt)
		}
	}
	return out, nil
}

// OptionFunc adapts a lookup function into an OptionSource.
type OptionFunc func(ctx context.Context, query string) ([]string, error)

// Options implements OptionSource.
func (f OptionFunc) Options(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}
