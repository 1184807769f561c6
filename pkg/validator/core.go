package validator

import (
	"errors"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes a single failed rule with translation support.
// The field it belongs to is given by its position in the error tree.
type ValidationError struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Message
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Validatable is implemented by request types that know how to check
// themselves. Validate returns nil when the value is valid, an errtree.Node
// describing every failure otherwise. Any other error is reported as a
// failure of the value as a whole.
type Validatable interface {
	Validate() error
}

// Apply executes rules against a single value.
// It returns an *errtree.Wrapped with the messages of the failed rules,
// or nil if all rules pass.
func Apply(rules ...Rule) error {
	msgs := messages(rules)
	if len(msgs) == 0 {
		return nil
	}
	return errtree.NewWrapped(msgs...)
}

// Validate calls Validate on v when it implements Validatable.
// Values that do not implement it are considered valid.
func Validate(v any) error {
	if val, ok := v.(Validatable); ok {
		return val.Validate()
	}
	return nil
}

// IsValidationError reports whether err carries a validation error tree.
func IsValidationError(err error) bool {
	var n errtree.Node
	return errors.As(err, &n)
}

func messages(rules []Rule) []string {
	var msgs []string
	for _, rule := range rules {
		if !rule.Check() {
			msgs = append(msgs, rule.Error.Message)
		}
	}
	return msgs
}
