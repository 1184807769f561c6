package errtree

import (
	"errors"
	"strings"
)

// NonFieldErrors is the report key for messages that have no enclosing
// field or index name.
const NonFieldErrors = "non_field_errors"

// Node is a validation error tree node. The set of implementations is closed:
// *Sequence, *Keyed and *Wrapped.
//
// Every node is an error, so a checker can return a tree from a plain
// Validate() error method.
type Node interface {
	error
	node()
}

// Sequence holds errors of an ordered collection.
// Errors are violations of the collection itself (e.g. its length),
// Items holds sub-trees of the elements that failed, keyed by index.
type Sequence struct {
	Errors []string
	Items  map[int]Node
}

// Keyed holds errors of an object with named fields.
type Keyed struct {
	Errors []string
	Fields map[string]Node
}

// Wrapped holds errors of a single value validated as a unit.
type Wrapped struct {
	Errors []string
}

func (*Sequence) node() {}
func (*Keyed) node()    {}
func (*Wrapped) node()  {}

func (s *Sequence) Error() string { return summary(s) }
func (k *Keyed) Error() string    { return summary(k) }
func (w *Wrapped) Error() string  { return summary(w) }

// NewSequence creates a sequence node with the given own errors.
func NewSequence(errs ...string) *Sequence {
	return &Sequence{Errors: errs, Items: make(map[int]Node)}
}

// Item attaches a sub-tree for the element at index i. Nil nodes, including
// typed nil pointers, are ignored.
func (s *Sequence) Item(i int, n Node) *Sequence {
	if isNil(n) {
		return s
	}
	if s.Items == nil {
		s.Items = make(map[int]Node)
	}
	s.Items[i] = n
	return s
}

// NewKeyed creates a keyed node with the given own errors.
func NewKeyed(errs ...string) *Keyed {
	return &Keyed{Errors: errs, Fields: make(map[string]Node)}
}

// Field attaches a sub-tree for the named field. Nil nodes, including
// typed nil pointers, are ignored.
func (k *Keyed) Field(name string, n Node) *Keyed {
	if isNil(n) {
		return k
	}
	if k.Fields == nil {
		k.Fields = make(map[string]Node)
	}
	k.Fields[name] = n
	return k
}

// NewWrapped creates a wrapper node with the given errors.
func NewWrapped(errs ...string) *Wrapped {
	return &Wrapped{Errors: errs}
}

// FromError returns the tree carried by err.
// A plain error becomes a root Wrapped node holding its text.
// Nil error, or err being itself a nil node pointer, yields nil.
func FromError(err error) Node {
	if err == nil {
		return nil
	}
	var n Node
	if errors.As(err, &n) {
		if !isNil(n) {
			return n
		}
		if error(n) == err {
			return nil
		}
	}
	return NewWrapped(err.Error())
}

func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Sequence:
		return n == nil
	case *Keyed:
		return n == nil
	case *Wrapped:
		return n == nil
	}
	return false
}

// IsEmpty reports whether n carries no messages at any depth.
func IsEmpty(n Node) bool {
	empty := true
	Walk(n, func(_ []string, msgs []string) {
		if len(msgs) > 0 {
			empty = false
		}
	})
	return empty
}

func summary(n Node) string {
	var parts []string
	Walk(n, func(path []string, msgs []string) {
		prefix := strings.Join(path, ".")
		for _, m := range msgs {
			if prefix == "" {
				parts = append(parts, m)
				continue
			}
			parts = append(parts, prefix+": "+m)
		}
	})
	if len(parts) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
