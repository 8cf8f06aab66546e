package shared

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_SortsAndFlattens(t *testing.T) {
	err := NewValidationError(validation.Errors{
		"title":     errors.New("cannot be blank"),
		"author":    validation.Errors{"id": errors.New("must be positive")},
		"coverText": nil,
	})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []Violation{
		{Property: "author.id", Message: "must be positive"},
		{Property: "title", Message: "cannot be blank"},
	}, ve.Violations)
	assert.Equal(t, "validation failed: author.id: must be positive; title: cannot be blank", ve.Error())
}

func TestNewValidationError_PassThrough(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, NewValidationError(plain))
}

func TestMerge(t *testing.T) {
	a := Violations(Violation{Property: "title", Message: "cannot be blank"})
	b := Violations(Violation{Property: "author", Message: "author not found"})

	var ve *ValidationError
	require.True(t, errors.As(Merge(a, b), &ve))
	assert.Equal(t, "author", ve.Violations[0].Property)
	assert.Equal(t, "title", ve.Violations[1].Property)

	assert.Equal(t, a, Merge(a, nil))
	assert.Equal(t, b, Merge(nil, b))
	assert.Nil(t, Merge(nil, nil))

	plain := errors.New("db down")
	assert.Same(t, plain, Merge(a, plain))
}
