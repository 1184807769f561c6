package validator

import (
	"fmt"
	"slices"
)

func InList[T comparable](value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"allowed_values": allowedValues,
			},
		},
	}
}

func NotInList[T comparable](value T, forbiddenValues []T) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(forbiddenValues, value)
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must not be one of: %v", forbiddenValues),
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"forbidden_values": forbiddenValues,
			},
		},
	}
}

// Custom builds a rule from an arbitrary check and message.
func Custom(check func() bool, message string) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Message:        message,
			TranslationKey: "validation.custom",
		},
	}
}
