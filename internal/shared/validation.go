package shared

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Violation is one failed constraint on a payload property.
type Violation struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// ValidationError carries every violation found on a payload, sorted by
// property. Handlers render it as a 400 with the violations array as body.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Property + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError converts ozzo validation.Errors into a *ValidationError.
// Nested struct errors are flattened as "parent.child". Nil stays nil and
// any other error is returned unchanged.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	ve := &ValidationError{}
	flatten("", errs, ve)
	sort.Slice(ve.Violations, func(i, j int) bool {
		return ve.Violations[i].Property < ve.Violations[j].Property
	})
	return ve
}

// Violations builds a *ValidationError from explicit property/message pairs.
func Violations(vs ...Violation) *ValidationError {
	out := append([]Violation(nil), vs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return &ValidationError{Violations: out}
}

func flatten(prefix string, errs validation.Errors, ve *ValidationError) {
	for field, err := range errs {
		if err == nil {
			continue
		}
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}
		if nested, ok := err.(validation.Errors); ok {
			flatten(name, nested, ve)
			continue
		}
		ve.Violations = append(ve.Violations, Violation{Property: name, Message: err.Error()})
	}
}

// Merge combines validation failures. Either argument may be nil; a non
// validation error in either argument is returned as is.
func Merge(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var va, vb *ValidationError
	if !errors.As(a, &va) {
		return a
	}
	if !errors.As(b, &vb) {
		return b
	}
	return Violations(append(append([]Violation(nil), va.Violations...), vb.Violations...)...)
}
