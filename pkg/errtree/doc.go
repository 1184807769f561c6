// Package errtree models validation errors as a tree that mirrors the shape
// of the validated data and flattens that tree into a JSON-friendly report.
//
// # Tree
//
// A tree is built from three node kinds:
//
//   - Keyed: an object with named fields
//   - Sequence: an ordered collection with sparse, index-keyed items
//   - Wrapped: a single value with a flat list of messages
//
// Any node may carry messages of its own. Clean subtrees are left out, so a
// tree only contains paths that failed.
//
//	tree := errtree.NewKeyed().
//		Field("name", errtree.NewWrapped("must be at least 3 characters long")).
//		Field("inner", errtree.NewKeyed().
//			Field("age", errtree.NewWrapped("must be at least 10")))
//
// # Report
//
// Flatten turns the tree into a Report:
//
//	{
//	  "name": ["must be at least 3 characters long"],
//	  "inner": {"age": ["must be at least 10"]}
//	}
//
// Messages attached to the root, or to a child with no name of its own in
// its immediate context, are reported under NonFieldErrors. A child that
// flattens to nothing but NonFieldErrors collapses into a plain list under
// the child's name.
//
// Nodes implement error, which lets a Validate() error method return a tree
// directly; FromError recovers it on the other side.
package errtree
