package errtree_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, errtree.FromError(nil))
	})

	t.Run("node is returned as is", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed().Field("name", errtree.NewWrapped("too short"))
		assert.Same(t, tree, errtree.FromError(tree))
	})

	t.Run("wrapped node is unwrapped", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewWrapped("bad")
		err := fmt.Errorf("checking food: %w", tree)

		n := errtree.FromError(err)

		require.NotNil(t, n)
		assert.Same(t, tree, n)
	})

	t.Run("nil node pointer yields nil", func(t *testing.T) {
		t.Parallel()
		var k *errtree.Keyed
		var err error = k
		assert.Nil(t, errtree.FromError(err))
	})

	t.Run("wrapped nil node pointer becomes a root wrapper", func(t *testing.T) {
		t.Parallel()
		var s *errtree.Sequence
		n := errtree.FromError(fmt.Errorf("checking menu: %w", s))

		w, ok := n.(*errtree.Wrapped)
		require.True(t, ok)
		assert.Equal(t, []string{"checking menu: validation failed"}, w.Errors)
	})

	t.Run("plain error becomes a root wrapper", func(t *testing.T) {
		t.Parallel()
		n := errtree.FromError(errors.New("overall data is invalid"))

		w, ok := n.(*errtree.Wrapped)
		require.True(t, ok)
		assert.Equal(t, []string{"overall data is invalid"}, w.Errors)
	})
}

func TestNode_Error(t *testing.T) {
	t.Parallel()

	tree := errtree.NewKeyed("overall invalid").
		Field("inner", errtree.NewKeyed().Field("name", errtree.NewWrapped("too short"))).
		Field("tags", errtree.NewSequence().Item(2, errtree.NewWrapped("empty tag")))

	assert.Equal(t,
		"validation failed: overall invalid; inner.name: too short; tags.2: empty tag",
		tree.Error(),
	)
	assert.Equal(t, "validation failed", errtree.NewKeyed().Error())

	var nilKeyed *errtree.Keyed
	assert.Equal(t, "validation failed", nilKeyed.Error())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, errtree.IsEmpty(errtree.NewKeyed()))
	assert.True(t, errtree.IsEmpty(errtree.NewKeyed().Field("a", errtree.NewSequence())))
	assert.False(t, errtree.IsEmpty(errtree.NewSequence().Item(0, errtree.NewWrapped("x"))))
}

func TestBuilders_IgnoreNil(t *testing.T) {
	t.Parallel()

	k := errtree.NewKeyed().Field("a", nil)
	s := errtree.NewSequence().Item(0, nil)

	assert.Empty(t, k.Fields)
	assert.Empty(t, s.Items)
}

func TestTypedNilNodes(t *testing.T) {
	t.Parallel()

	t.Run("builders ignore typed nil pointers", func(t *testing.T) {
		t.Parallel()
		k := errtree.NewKeyed().
			Field("a", (*errtree.Keyed)(nil)).
			Field("b", (*errtree.Sequence)(nil)).
			Field("c", (*errtree.Wrapped)(nil))
		s := errtree.NewSequence().Item(0, (*errtree.Keyed)(nil))

		assert.Empty(t, k.Fields)
		assert.Empty(t, s.Items)
	})

	t.Run("flatten and walk skip typed nil children", func(t *testing.T) {
		t.Parallel()
		tree := &errtree.Keyed{Fields: map[string]errtree.Node{
			"x":    (*errtree.Keyed)(nil),
			"name": errtree.NewWrapped("too short"),
		}}

		var report errtree.Report
		require.NotPanics(t, func() { report = errtree.Flatten(tree) })
		assert.Equal(t, errtree.Report{"name": []string{"too short"}}, report)

		var paths [][]string
		require.NotPanics(t, func() {
			errtree.Walk(tree, func(path []string, _ []string) { paths = append(paths, path) })
		})
		assert.Equal(t, [][]string{{"name"}}, paths)
		assert.Equal(t, "validation failed: name: too short", tree.Error())
	})

	t.Run("flatten of a typed nil root is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, errtree.Flatten((*errtree.Sequence)(nil)))
	})
}
