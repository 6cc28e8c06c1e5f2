package sift_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftql/sift"
	"github.com/siftql/sift/filter"
)

func testRegistry() *filter.Registry {
	return filter.NewRegistry(
		filter.Field{Key: "name", Label: "Name", Type: filter.TypeString},
		filter.Field{Key: "age", Label: "Age", Type: filter.TypeNumber},
		filter.Field{Key: "department", Label: "Department", Type: filter.TypeEnum,
			Options: filter.StaticOptions{"design", "engineering", "marketing"}},
	)
}

func testRows() []filter.Record {
	return []filter.Record{
		{"name": filter.String("Alice Johnson"), "age": filter.Number(31), "department": filter.String("design")},
		{"name": filter.String("Bob Miller"), "age": filter.Number(25), "department": filter.String("engineering")},
		{"name": filter.String("Alice Smith"), "age": filter.Number(35), "department": filter.String("design")},
		{"name": filter.String("Carol Diaz"), "age": filter.Number(40), "department": filter.String("marketing")},
	}
}

func TestSessionCommitAndApply(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	assert.Nil(t, session.Root())
	assert.Equal(t, 0, session.Len())

	// No filter means match everything.
	got := session.Apply(ctx, testRows())
	assert.Len(t, got, 4)

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	require.NoError(t, session.Commit(ctx, "department", filter.OpEqual, "design"))
	assert.Equal(t, 2, session.Len())

	got = session.Apply(ctx, testRows())
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Johnson", got[0]["name"].S)
	assert.Equal(t, "Alice Smith", got[1]["name"].S)
}

func TestSessionCommitErrors(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	err := session.Commit(ctx, "salary", filter.OpEqual, "100")
	assert.ErrorIs(t, err, sift.ErrUnknownField)

	err = session.Commit(ctx, "age", filter.OpContains, "3")
	assert.ErrorIs(t, err, sift.ErrInvalidOperator)

	assert.Nil(t, session.Root(), "rejected commits must not change the group")
}

func TestSessionRemove(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	require.NoError(t, session.Commit(ctx, "department", filter.OpEqual, "design"))

	err := session.Remove(ctx, 5)
	assert.ErrorIs(t, err, sift.ErrIndexOutOfRange)

	require.NoError(t, session.Remove(ctx, 0))
	assert.Equal(t, 1, session.Len())

	// Only the department condition is left.
	got := session.Apply(ctx, testRows())
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Johnson", got[0]["name"].S)

	// Removing the last condition resets to no filter.
	require.NoError(t, session.Remove(ctx, 0))
	assert.Nil(t, session.Root())

	err = session.Remove(ctx, 0)
	assert.ErrorIs(t, err, sift.ErrIndexOutOfRange)
}

func TestSessionClear(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	session.Clear()

	assert.Nil(t, session.Root())
	assert.Len(t, session.Apply(ctx, testRows()), 4)
}

func TestSessionPublishesChanges(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	var published []filter.Node
	session.OnChange(func(root filter.Node) {
		published = append(published, root)
	})

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	require.NoError(t, session.Remove(ctx, 0))
	require.NoError(t, session.Commit(ctx, "department", filter.OpEqual, "design"))
	session.Clear()

	require.Len(t, published, 4)

	group, ok := published[0].(filter.Group)
	require.True(t, ok)
	assert.Len(t, group.Children, 1)

	assert.Nil(t, published[1], "removing the only condition publishes nil")

	group, ok = published[2].(filter.Group)
	require.True(t, ok)
	assert.Len(t, group.Children, 1)

	assert.Nil(t, published[3], "clear publishes nil")
}

// Root returns immutable snapshots: committing more conditions must not
// change a tree handed out earlier.
func TestSessionRootIsSnapshot(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	snapshot := session.Root()

	require.NoError(t, session.Commit(ctx, "department", filter.OpEqual, "design"))

	group, ok := snapshot.(filter.Group)
	require.True(t, ok)
	assert.Len(t, group.Children, 1)
}

func TestSessionMatch(t *testing.T) {
	ctx := context.Background()
	session := sift.New(testRegistry())

	rec := filter.Record{"age": filter.Number(31)}
	assert.True(t, session.Match(rec), "empty session matches everything")

	require.NoError(t, session.Commit(ctx, "age", filter.OpGreaterThan, "30"))
	assert.True(t, session.Match(rec))
	assert.False(t, session.Match(filter.Record{"age": filter.Number(25)}))
}

func TestSessionOperators(t *testing.T) {
	session := sift.New(testRegistry())

	ops, err := session.Operators("name")
	require.NoError(t, err)
	assert.Equal(t, []filter.Operator{filter.OpContains, filter.OpEqual, filter.OpNotEqual}, ops)

	_, err = session.Operators("salary")
	assert.ErrorIs(t, err, sift.ErrUnknownField)
}

func TestSessionResolveOptions(t *testing.T) {
	session := sift.New(testRegistry(),
		sift.WithLogger(sift.NoopLogger()),
		sift.WithMaxLookups(2),
		sift.WithLookupRate(100),
	)

	applied := make(chan []string, 1)
	err := session.ResolveOptions(context.Background(), "department", "eng", func(opts []string) {
		applied <- opts
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"engineering"}, <-applied)
}
