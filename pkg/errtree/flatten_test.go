package errtree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

func toJSON(t *testing.T, r errtree.Report) string {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("field level error", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed().Field("name", errtree.NewWrapped("too short"))

		report := errtree.Flatten(tree)

		assert.Equal(t, errtree.Report{"name": []string{"too short"}}, report)
	})

	t.Run("nested field level error", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed().Field("inner",
			errtree.NewKeyed().Field("name", errtree.NewWrapped("too short")),
		)

		report := errtree.Flatten(tree)

		assert.JSONEq(t, `{"inner":{"name":["too short"]}}`, toJSON(t, report))
	})

	t.Run("root errors are promoted to non_field_errors", func(t *testing.T) {
		t.Parallel()
		report := errtree.Flatten(errtree.NewKeyed("overall invalid"))

		assert.Equal(t, errtree.Report{errtree.NonFieldErrors: []string{"overall invalid"}}, report)
	})

	t.Run("wrapped root", func(t *testing.T) {
		t.Parallel()
		report := errtree.Flatten(errtree.NewWrapped("must be at least 10"))

		assert.Equal(t, errtree.Report{"non_field_errors": []string{"must be at least 10"}}, report)
	})

	t.Run("sequence own errors at root", func(t *testing.T) {
		t.Parallel()
		report := errtree.Flatten(errtree.NewSequence("need at least 2 items"))

		assert.Equal(t, errtree.Report{"non_field_errors": []string{"need at least 2 items"}}, report)
	})

	t.Run("sequence own errors under a field", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed().Field("items", errtree.NewSequence("need at least 2 items"))

		report := errtree.Flatten(tree)

		assert.Equal(t, errtree.Report{"items": []string{"need at least 2 items"}}, report)
	})

	t.Run("multiple nested objects", func(t *testing.T) {
		t.Parallel()
		inner := func() errtree.Node {
			return errtree.NewKeyed().
				Field("name", errtree.NewWrapped("too short")).
				Field("age", errtree.NewWrapped("too young"))
		}
		tree := errtree.NewKeyed().Field("inner1", inner()).Field("inner2", inner())

		report := errtree.Flatten(tree)

		assert.JSONEq(t, `{
			"inner1": {"name": ["too short"], "age": ["too young"]},
			"inner2": {"name": ["too short"], "age": ["too young"]}
		}`, toJSON(t, report))
	})

	t.Run("order of messages is preserved", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed().Field("password",
			errtree.NewWrapped("too short", "needs a digit", "needs a symbol"),
		)

		report := errtree.Flatten(tree)

		assert.Equal(t, []string{"too short", "needs a digit", "needs a symbol"}, report["password"])
	})

	t.Run("sparse indices", func(t *testing.T) {
		t.Parallel()
		seq := errtree.NewSequence().
			Item(0, errtree.NewWrapped("bad first")).
			Item(2, errtree.NewWrapped("bad third"))

		report := errtree.Flatten(errtree.NewKeyed().Field("tags", seq))

		tags, ok := report["tags"].(errtree.Report)
		require.True(t, ok)
		assert.Len(t, tags, 2)
		assert.Equal(t, []string{"bad first"}, tags["0"])
		assert.Equal(t, []string{"bad third"}, tags["2"])
		assert.NotContains(t, tags, "1")
	})

	t.Run("sequence at root keys items by index", func(t *testing.T) {
		t.Parallel()
		seq := errtree.NewSequence().
			Item(2, errtree.NewWrapped("bad")).
			Item(5, errtree.NewKeyed().Field("name", errtree.NewWrapped("too short")))

		report := errtree.Flatten(seq)

		assert.JSONEq(t, `{"2":["bad"],"5":{"name":["too short"]}}`, toJSON(t, report))
	})

	t.Run("sequence own errors and items under a field are nested together", func(t *testing.T) {
		t.Parallel()
		seq := errtree.NewSequence("need at least 2 items").Item(0, errtree.NewWrapped("too short"))

		report := errtree.Flatten(errtree.NewKeyed().Field("items", seq))

		assert.JSONEq(t, `{"items":{"non_field_errors":["need at least 2 items"],"0":["too short"]}}`, toJSON(t, report))
	})

	t.Run("child with own errors and fields is nested whole", func(t *testing.T) {
		t.Parallel()
		child := errtree.NewKeyed("passwords do not match").
			Field("password", errtree.NewWrapped("too short"))

		report := errtree.Flatten(errtree.NewKeyed().Field("credentials", child))

		assert.JSONEq(t, `{"credentials":{"non_field_errors":["passwords do not match"],"password":["too short"]}}`, toJSON(t, report))
	})

	t.Run("root with own errors and fields emits both", func(t *testing.T) {
		t.Parallel()
		tree := errtree.NewKeyed("overall invalid").Field("name", errtree.NewWrapped("too short"))

		report := errtree.Flatten(tree)

		assert.JSONEq(t, `{"non_field_errors":["overall invalid"],"name":["too short"]}`, toJSON(t, report))
	})

	t.Run("keyed item with own errors keeps only its fields under the index", func(t *testing.T) {
		t.Parallel()
		item := errtree.NewKeyed("item invalid").Field("name", errtree.NewWrapped("too short"))

		report := errtree.Flatten(errtree.NewSequence().Item(1, item))

		assert.JSONEq(t, `{"1":{"name":["too short"]}}`, toJSON(t, report))
	})

	t.Run("keyed item with only own errors collapses to a list", func(t *testing.T) {
		t.Parallel()
		report := errtree.Flatten(errtree.NewSequence().Item(3, errtree.NewKeyed("item invalid")))

		assert.Equal(t, errtree.Report{"3": []string{"item invalid"}}, report)
	})

	t.Run("empty tree yields empty report", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, errtree.Flatten(errtree.NewKeyed()))
		assert.Empty(t, errtree.Flatten(errtree.NewSequence()))
		assert.Empty(t, errtree.Flatten(errtree.NewWrapped()))
		assert.Empty(t, errtree.Flatten(nil))
	})

	t.Run("report does not alias tree messages", func(t *testing.T) {
		t.Parallel()
		leaf := errtree.NewWrapped("too short")
		report := errtree.Flatten(errtree.NewKeyed().Field("name", leaf))

		leaf.Errors[0] = "changed"

		assert.Equal(t, []string{"too short"}, report["name"])
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	tree := errtree.NewKeyed("root").
		Field("b", errtree.NewSequence().Item(1, errtree.NewWrapped("b1"))).
		Field("a", errtree.NewWrapped("a1", "a2"))

	type visit struct {
		path string
		msgs []string
	}
	var got []visit
	errtree.Walk(tree, func(path []string, msgs []string) {
		p := ""
		for i, s := range path {
			if i > 0 {
				p += "."
			}
			p += s
		}
		got = append(got, visit{p, msgs})
	})

	assert.Equal(t, []visit{
		{"", []string{"root"}},
		{"a", []string{"a1", "a2"}},
		{"b.1", []string{"b1"}},
	}, got)
}
