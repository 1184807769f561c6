package validator

import (
	"github.com/dmitrymomot/validjson/pkg/errtree"
)

// ObjectErrors collects the errors of a struct-like value field by field.
// The zero value is not usable, create one with Object.
type ObjectErrors struct {
	node *errtree.Keyed
}

// Object starts collecting errors for an object.
// Rules passed here apply to the object as a whole, e.g. cross-field checks.
//
// Example:
//
//	func (r CreateFoodRequest) Validate() error {
//		return validator.Object(
//			validator.Rule{Check: func() bool { return r.Rating <= r.MaxRating }, Error: ...},
//		).
//			Field("name", validator.MinLenString(r.Name, 3)).
//			Nested("supplier", r.Supplier.Validate()).
//			Err()
//	}
func Object(rules ...Rule) *ObjectErrors {
	return &ObjectErrors{node: errtree.NewKeyed(messages(rules)...)}
}

// Check applies rules to the object as a whole.
func (o *ObjectErrors) Check(rules ...Rule) *ObjectErrors {
	o.node.Errors = append(o.node.Errors, messages(rules)...)
	return o
}

// Field applies rules to a scalar field.
func (o *ObjectErrors) Field(name string, rules ...Rule) *ObjectErrors {
	return o.Nested(name, Apply(rules...))
}

// Nested attaches the result of validating a nested value under name.
// A nil err leaves the field clean.
func (o *ObjectErrors) Nested(name string, err error) *ObjectErrors {
	if n := errtree.FromError(err); n != nil {
		o.node.Field(name, n)
	}
	return o
}

// Err returns the collected tree, or nil if nothing failed.
func (o *ObjectErrors) Err() error {
	if len(o.node.Errors) == 0 && len(o.node.Fields) == 0 {
		return nil
	}
	return o.node
}

// Items validates a slice. Rules apply to the slice itself (length and
// the like), check is called for every element and may return nil.
// Only failing elements appear in the result.
//
// Example:
//
//	validator.Items(r.Tags, func(_ int, tag string) error {
//		return validator.Apply(validator.RequiredString(tag))
//	}, validator.MinLenSlice(r.Tags, 1))
func Items[T any](items []T, check func(i int, item T) error, rules ...Rule) error {
	seq := errtree.NewSequence(messages(rules)...)
	if check != nil {
		for i, item := range items {
			seq.Item(i, errtree.FromError(check(i, item)))
		}
	}
	if len(seq.Errors) == 0 && len(seq.Items) == 0 {
		return nil
	}
	return seq
}

// Each validates every element of a slice of Validatable values.
func Each[T Validatable](items []T, rules ...Rule) error {
	return Items(items, func(_ int, item T) error {
		return item.Validate()
	}, rules...)
}

// Entries validates the values of a map. Keys become field names.
func Entries[V any](m map[string]V, check func(key string, value V) error, rules ...Rule) error {
	obj := Object(rules...)
	if check != nil {
		for k, v := range m {
			obj.Nested(k, check(k, v))
		}
	}
	return obj.Err()
}
