package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

// MinLenString validates the length of a string in characters.
func MinLenString(value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxLenString(value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}

func LenString(value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"length": exact,
			},
		},
	}
}

// Convenience aliases for common string validation cases

func Required(value string) Rule {
	return RequiredString(value)
}

func MinLen(value string, min int) Rule {
	return MinLenString(value, min)
}

func MaxLen(value string, max int) Rule {
	return MaxLenString(value, max)
}
