package validator

import "fmt"

func RequiredSlice[T any](value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

func MinLenSlice[T any](value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxLenSlice[T any](value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must have at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}

// UniqueSlice validates that a slice has no duplicate elements.
func UniqueSlice[T comparable](value []T) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[T]struct{}, len(value))
			for _, v := range value {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
		Error: ValidationError{
			Message:        "must not contain duplicates",
			TranslationKey: "validation.unique_items",
		},
	}
}

func RequiredMap[K comparable, V any](value map[K]V) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}
