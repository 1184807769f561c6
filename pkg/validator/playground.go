package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validjson/pkg/errtree"
)

var (
	validate     *playground.Validate
	validateOnce sync.Once
)

// Engine returns the shared go-playground validator used by Struct.
// Field names in reported paths come from json tags.
// Custom validations may be registered on it during startup.
func Engine() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// Struct validates v using `validate:"..."` struct tags and returns the
// failures as an error tree shaped like v, or nil if v is valid.
// Values that are not structs (or pointers to structs) are considered valid.
//
// Struct has the signature of a checker and can be plugged into the
// extractor with handler.WithChecker(validator.Struct).
func Struct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := Engine().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidatorFailed, err)
	}

	root := newPathNode()
	for _, fe := range fieldErrs {
		root.insert(namespacePath(fe.Namespace()), translateError(fe))
	}
	return root.build(true)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

type segment struct {
	key     string
	indexed bool
}

// namespacePath splits a go-playground namespace such as
// "Menu.foods[1].name" into path segments, dropping the top-level type name.
func namespacePath(ns string) []segment {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return nil
	}

	var path []segment
	var name strings.Builder
	flush := func() {
		if name.Len() > 0 {
			path = append(path, segment{key: name.String()})
			name.Reset()
		}
	}

	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; c {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(rest[i:], ']')
			if end < 0 {
				name.WriteString(rest[i:])
				i = len(rest)
				continue
			}
			key := rest[i+1 : i+end]
			_, convErr := strconv.Atoi(key)
			path = append(path, segment{key: key, indexed: convErr == nil})
			i += end
		default:
			name.WriteByte(c)
		}
	}
	flush()
	return path
}

type pathNode struct {
	msgs     []string
	children map[string]*pathNode
	indexed  bool
}

func newPathNode() *pathNode {
	return &pathNode{children: make(map[string]*pathNode)}
}

func (p *pathNode) insert(path []segment, msg string) {
	cur := p
	for _, seg := range path {
		next, ok := cur.children[seg.key]
		if !ok {
			next = newPathNode()
			cur.children[seg.key] = next
		}
		if seg.indexed {
			cur.indexed = true
		}
		cur = next
	}
	cur.msgs = append(cur.msgs, msg)
}

func (p *pathNode) build(root bool) errtree.Node {
	if len(p.children) == 0 {
		if root {
			return errtree.NewKeyed(p.msgs...)
		}
		return errtree.NewWrapped(p.msgs...)
	}

	if p.indexed {
		seq := errtree.NewSequence(p.msgs...)
		ok := true
		for k, child := range p.children {
			i, err := strconv.Atoi(k)
			if err != nil {
				ok = false
				break
			}
			seq.Item(i, child.build(false))
		}
		if ok {
			return seq
		}
	}

	obj := errtree.NewKeyed(p.msgs...)
	for k, child := range p.children {
		obj.Field(k, child.build(false))
	}
	return obj
}

var errorMessageTemplates = map[string]string{
	"required": "field is required",
	"email":    "must be a valid email address",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid date/time",
	"alpha":    "must contain only letters",
	"alphanum": "must contain only letters and numbers",
	"unique":   "must not contain duplicates",
}

var errorMessageWithParam = map[string]string{
	"oneof": "must be one of: %s",
	"gte":   "must be greater than or equal to %s",
	"lte":   "must be less than or equal to %s",
	"gt":    "must be greater than %s",
	"lt":    "must be less than %s",
	"eq":    "must be equal to %s",
	"ne":    "must not be equal to %s",
}

func translateError(fe playground.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	if msg, ok := errorMessageTemplates[tag]; ok {
		return msg
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, param)
	}
	return translateSized(fe.Kind(), tag, param)
}

// translateSized renders min/max/len with wording that depends on the kind
// of the failing value.
func translateSized(kind reflect.Kind, tag, param string) string {
	var unit string
	switch kind {
	case reflect.String:
		unit = " characters long"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch tag {
	case "min":
		if unit == " items" {
			return fmt.Sprintf("must have at least %s items", param)
		}
		return fmt.Sprintf("must be at least %s%s", param, unit)
	case "max":
		if unit == " items" {
			return fmt.Sprintf("must have at most %s items", param)
		}
		return fmt.Sprintf("must be at most %s%s", param, unit)
	case "len":
		if unit == " items" {
			return fmt.Sprintf("must have exactly %s items", param)
		}
		return fmt.Sprintf("must be exactly %s%s", param, unit)
	default:
		return fmt.Sprintf("failed %s validation", tag)
	}
}
