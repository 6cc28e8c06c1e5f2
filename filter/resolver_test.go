package filter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticOptions(t *testing.T) {
	src := StaticOptions{"Alice", "Alfred", "Bob"}

	got, err := src.Options(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Alfred", "Bob"}, got)

	got, err = src.Options(context.Background(), "al")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Alfred"}, got)

	got, err = src.Options(context.Background(), "zz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolverLookup(t *testing.T) {
	reg := NewRegistry(
		Field{Key: "status", Type: TypeEnum, Options: StaticOptions{"active", "draft", "archived"}},
	)
	r := NewResolver(reg, ResolverConfig{})

	applied := make(chan []string, 1)
	err := r.Lookup(context.Background(), "status", "ar", func(opts []string) {
		applied <- opts
	})
	require.NoError(t, err)

	select {
	case got := <-applied:
		assert.Equal(t, []string{"archived"}, got)
	case <-time.After(time.Second):
		t.Fatal("lookup never applied")
	}
}

func TestResolverUnknownField(t *testing.T) {
	r := NewResolver(NewRegistry(), ResolverConfig{})

	err := r.Lookup(context.Background(), "nope", "a", func([]string) {
		t.Error("apply called for unknown field")
	})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestResolverFieldWithoutOptions(t *testing.T) {
	reg := NewRegistry(Field{Key: "name", Type: TypeString})
	r := NewResolver(reg, ResolverConfig{})

	err := r.Lookup(context.Background(), "name", "a", func([]string) {
		t.Error("apply called for field without an option source")
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
}

// A failed lookup degrades to an empty option list; it is applied, not
// surfaced as an error, and never retried.
func TestResolverLookupFailure(t *testing.T) {
	calls := 0
	src := OptionFunc(func(ctx context.Context, query string) ([]string, error) {
		calls++
		return nil, errors.New("backend down")
	})

	reg := NewRegistry(Field{Key: "assignee", Type: TypeRelation, Options: src})
	r := NewResolver(reg, ResolverConfig{LookupsPerSec: 100})

	applied := make(chan []string, 1)
	err := r.Lookup(context.Background(), "assignee", "a", func(opts []string) {
		applied <- opts
	})
	require.NoError(t, err)

	select {
	case got := <-applied:
		assert.Empty(t, got)
	case <-time.After(time.Second):
		t.Fatal("failed lookup never degraded to an empty apply")
	}
	assert.Equal(t, 1, calls)
}

// Last query wins: a lookup that resolves after a newer one has resolved
// must be dropped, even though it was issued first.
func TestResolverLastQueryWins(t *testing.T) {
	release := make(chan struct{})
	src := OptionFunc(func(ctx context.Context, query string) ([]string, error) {
		if query == "a" {
			<-release // hold the first lookup until after the second resolves
			return []string{"alice", "alfred", "arthur"}, nil
		}
		return []string{"alice", "alfred"}, nil
	})

	reg := NewRegistry(Field{Key: "assignee", Type: TypeRelation, Options: src})
	r := NewResolver(reg, ResolverConfig{})

	applied := make(chan []string, 2)
	apply := func(opts []string) { applied <- opts }

	ctx := context.Background()
	require.NoError(t, r.Lookup(ctx, "assignee", "a", apply))
	require.NoError(t, r.Lookup(ctx, "assignee", "al", apply))

	select {
	case got := <-applied:
		assert.Equal(t, []string{"alice", "alfred"}, got, "latest query's result must be applied")
	case <-time.After(time.Second):
		t.Fatal("lookup never applied")
	}

	close(release)

	select {
	case stale := <-applied:
		t.Fatalf("stale result applied: %v", stale)
	case <-time.After(50 * time.Millisecond):
	}
}

// Lookups for different fields do not supersede each other.
func TestResolverGenerationsPerField(t *testing.T) {
	reg := NewRegistry(
		Field{Key: "status", Type: TypeEnum, Options: StaticOptions{"active"}},
		Field{Key: "assignee", Type: TypeRelation, Options: StaticOptions{"alice"}},
	)
	r := NewResolver(reg, ResolverConfig{})

	statusApplied := make(chan []string, 1)
	assigneeApplied := make(chan []string, 1)

	ctx := context.Background()
	require.NoError(t, r.Lookup(ctx, "status", "", func(opts []string) { statusApplied <- opts }))
	require.NoError(t, r.Lookup(ctx, "assignee", "", func(opts []string) { assigneeApplied <- opts }))

	select {
	case got := <-statusApplied:
		assert.Equal(t, []string{"active"}, got)
	case <-time.After(time.Second):
		t.Fatal("status lookup never applied")
	}

	select {
	case got := <-assigneeApplied:
		assert.Equal(t, []string{"alice"}, got)
	case <-time.After(time.Second):
		t.Fatal("assignee lookup never applied")
	}
}
