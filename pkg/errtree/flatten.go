package errtree

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Report is the flattened, client-facing form of a validation error tree.
// Values are either []string or a nested Report.
type Report map[string]any

// Flatten converts a validation error tree into a Report.
//
// Own errors of the root land under NonFieldErrors. A named child whose
// flattened form is only a NonFieldErrors list collapses into
// "field": [messages]; any other child is nested as an object.
// Sequence items are keyed by their decimal index and only present
// indices appear.
//
// Flatten must not be called with an empty tree; it returns an empty
// Report in that case.
func Flatten(root Node) Report {
	result := make(Report)
	if isNil(root) {
		return result
	}
	flatten(result, "", false, root)
	return result
}

func flatten(result Report, key string, hasKey bool, n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *Wrapped:
		putMessages(result, key, hasKey, n.Errors)

	case *Sequence:
		putMessages(result, key, hasKey, n.Errors)
		if len(n.Items) == 0 {
			return
		}
		items := make(Report, len(n.Items))
		for _, i := range slices.Sorted(maps.Keys(n.Items)) {
			flatten(items, strconv.Itoa(i), true, n.Items[i])
		}
		maps.Copy(result, items)

	case *Keyed:
		putMessages(result, key, hasKey, n.Errors)
		fields := make(Report, len(n.Fields))
		for _, name := range slices.Sorted(maps.Keys(n.Fields)) {
			if isNil(n.Fields[name]) {
				continue
			}
			child := make(Report)
			flatten(child, "", false, n.Fields[name])
			if msgs, ok := child[NonFieldErrors]; ok && len(child) == 1 {
				fields[name] = msgs
				continue
			}
			fields[name] = child
		}
		if len(fields) == 0 {
			return
		}
		if !hasKey {
			maps.Copy(result, fields)
			return
		}
		if existing, ok := result[key].(Report); ok {
			maps.Copy(existing, fields)
			return
		}
		result[key] = fields

	default:
		panic(fmt.Sprintf("errtree: unknown node type %T", n))
	}
}

func putMessages(result Report, key string, hasKey bool, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	if !hasKey {
		key = NonFieldErrors
	}
	result[key] = slices.Clone(msgs)
}

// Walk calls fn for the own messages of every node in the tree, parents
// before children, with the path of names leading to the node.
// Children are visited in index or name order.
func Walk(n Node, fn func(path []string, messages []string)) {
	walk(nil, n, fn)
}

func walk(path []string, n Node, fn func([]string, []string)) {
	switch n := n.(type) {
	case nil:
		return
	case *Wrapped:
		if n == nil {
			return
		}
		if len(n.Errors) > 0 {
			fn(path, n.Errors)
		}
	case *Sequence:
		if n == nil {
			return
		}
		if len(n.Errors) > 0 {
			fn(path, n.Errors)
		}
		for _, i := range slices.Sorted(maps.Keys(n.Items)) {
			walk(append(slices.Clone(path), strconv.Itoa(i)), n.Items[i], fn)
		}
	case *Keyed:
		if n == nil {
			return
		}
		if len(n.Errors) > 0 {
			fn(path, n.Errors)
		}
		for _, name := range slices.Sorted(maps.Keys(n.Fields)) {
			walk(append(slices.Clone(path), name), n.Fields[name], fn)
		}
	}
}
