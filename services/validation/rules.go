package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"glossify/models"
)

// Rule is the closed set of field rule variants. Evaluation order within a
// field is fixed: Required, MinLength, MaxLength, Pattern, Custom.
type Rule interface {
	isRule()
}

// Required fails when the field value is empty (nil, blank string, empty
// slice or map).
type Required struct {
	Message string
}

// MinLength fails when the string value is shorter than N. Skipped on empty
// values.
type MinLength struct {
	N       int
	Message string
}

// MaxLength fails when the string value is longer than N. Skipped on empty
// values.
type MaxLength struct {
	N       int
	Message string
}

// Pattern fails when the stringified value does not match the expression.
// Skipped on empty values.
type Pattern struct {
	Regexp  *regexp.Regexp
	Code    string
	Message string
}

// Custom runs a predicate against the field value and the full form. The
// predicate returns an empty message when the value passes. Unlike length and
// pattern rules it also runs on empty non-nil values, so conditional
// requirements can be expressed against form context; nil values are left to
// Required.
type Custom struct {
	Code  string
	Check func(value any, form *models.BookingFormData) string
}

func (Required) isRule()  {}
func (MinLength) isRule() {}
func (MaxLength) isRule() {}
func (Pattern) isRule()   {}
func (Custom) isRule()    {}

// FieldRules binds an ordered rule list to one (possibly nested) field path.
// Get extracts the field value from the form; it returns nil when a parent
// record has not been populated yet.
type FieldRules struct {
	Path  string
	Get   func(form *models.BookingFormData) any
	Rules []Rule
}

// Rule violation codes shared across steps.
const (
	CodeRequired  = "required"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodePattern   = "pattern"
)

// isEmpty reports whether a field value counts as not-populated: nil (typed
// or untyped), a blank or whitespace-only string, or an empty slice/map.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// stringify renders a value for length and pattern checks.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// evaluateField applies the field's rules in order and collects every
// violation; rules never short-circuit across fields.
func evaluateField(step int, fr FieldRules, form *models.BookingFormData) []models.ValidationError {
	value := fr.Get(form)
	empty := isEmpty(value)

	var errs []models.ValidationError
	for _, rule := range fr.Rules {
		switch r := rule.(type) {
		case Required:
			if empty {
				errs = append(errs, violation(step, fr.Path, CodeRequired, r.Message))
			}
		case MinLength:
			if !empty && len(stringify(value)) < r.N {
				errs = append(errs, violation(step, fr.Path, CodeMinLength, r.Message))
			}
		case MaxLength:
			if !empty && len(stringify(value)) > r.N {
				errs = append(errs, violation(step, fr.Path, CodeMaxLength, r.Message))
			}
		case Pattern:
			if !empty && !r.Regexp.MatchString(stringify(value)) {
				code := r.Code
				if code == "" {
					code = CodePattern
				}
				errs = append(errs, violation(step, fr.Path, code, r.Message))
			}
		case Custom:
			if value == nil {
				continue
			}
			if msg := r.Check(value, form); msg != "" {
				errs = append(errs, violation(step, fr.Path, r.Code, msg))
			}
		}
	}
	return errs
}

func violation(step int, path, code, message string) models.ValidationError {
	return models.ValidationError{
		Step:    step,
		Field:   path,
		Message: message,
		Code:    code,
	}
}
