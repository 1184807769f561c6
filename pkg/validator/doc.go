// Package validator provides small, composable validation rules and
// builders that report failures as an errtree error tree shaped like the
// validated value.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Rules carry no field name; the position of a failure is given by where it
// is attached in the tree.
//
// # Building trees
//
//   - Apply(rules...)       checks a single value, returns *errtree.Wrapped or nil
//   - Object(rules...)      collects errors of a struct field by field
//   - Items(slice, fn, ...) checks a slice and each of its elements
//   - Each(slice, ...)      same for slices of Validatable values
//   - Entries(map, fn, ...) checks the values of a string-keyed map
//
// # Usage
//
//	type Food struct {
//		Name   string `json:"name"`
//		Rating int    `json:"rating"`
//	}
//
//	func (f Food) Validate() error {
//		return validator.Object().
//			Field("name", validator.MinLenString(f.Name, 3)).
//			Field("rating", validator.MinNum(f.Rating, 1), validator.MaxNum(f.Rating, 10)).
//			Err()
//	}
//
// # Struct tags
//
// Struct runs github.com/go-playground/validator/v10 over `validate:"..."`
// tags and converts its flat list of field errors back into a tree, using
// json tag names as keys:
//
//	type Menu struct {
//		Title string   `json:"title" validate:"required,min=3"`
//		Tags  []string `json:"tags" validate:"min=1,dive,min=2"`
//	}
//
//	err := validator.Struct(&menu)
//
// Both Validate and Struct have the checker signature func(any) error
// accepted by the handler package.
package validator
