package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *UserError
		expected string
	}{
		{
			name:     "simple message",
			err:      &UserError{Code: ErrCodeDefinitionNotFound, Message: "tour definition not found"},
			expected: "tour definition not found",
		},
		{
			name: "message with context",
			err: &UserError{
				Code:       ErrCodeDefinitionNotFound,
				Message:    "tour definition not found",
				Context:    "tourguide.yaml",
				Suggestion: "run init",
			},
			expected: "tour definition not found (at tourguide.yaml)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	formatted := NewDefinitionNotFoundError("tourguide.yaml").Format()

	assert.Contains(t, formatted, "[DEFINITION_NOT_FOUND]")
	assert.Contains(t, formatted, "Location: tourguide.yaml")
	assert.Contains(t, formatted, "Suggestion: Run 'tourguide init'")
}

func TestUserError_IsAndUnwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("boom")
	err := NewUserError(ErrCodeDefinitionParse, "parse failed").WithUnderlying(underlying)
	wrapped := fmt.Errorf("loading: %w", err)

	assert.ErrorIs(t, wrapped, underlying)
	assert.ErrorIs(t, wrapped, &UserError{Code: ErrCodeDefinitionParse})
	assert.NotErrorIs(t, wrapped, &UserError{Code: ErrCodeUnknownValue})
	assert.True(t, IsUserError(wrapped, ErrCodeDefinitionParse))
	assert.Same(t, err, GetUserError(wrapped))
	assert.Nil(t, GetUserError(underlying))
}

func TestUserError_WithCopies(t *testing.T) {
	t.Parallel()

	base := NewUserError(ErrCodeValidationFailed, "bad")
	withCtx := base.WithContext("children[0]").WithSuggestion("fix it")

	assert.Empty(t, base.Context)
	assert.Empty(t, base.Suggestion)
	assert.Equal(t, "children[0]", withCtx.Context)
	assert.Equal(t, "fix it", withCtx.Suggestion)
}

func TestErrorList(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	assert.NoError(t, list.AsError())
	assert.Empty(t, list.Error())
	assert.Empty(t, list.Format())

	list.Add(nil)
	list.AddValidation("id", "tour id is required", "add one")
	assert.Equal(t, "id: tour id is required (at id)", list.Error())

	list.Add(NewSchemaError("v2.0.0"))
	require.Equal(t, 2, list.Len())
	assert.Contains(t, list.Error(), "2 errors occurred:")
	assert.Contains(t, list.Format(), "--- Error 2 ---")
	assert.Error(t, list.AsError())

	errs := list.Errors()
	errs[0] = nil
	assert.NotNil(t, list.Errors()[0], "Errors returns a copy")
}

func TestNewUnknownValueError(t *testing.T) {
	t.Parallel()

	err := NewUnknownValueError("children[1].kind", "dailog", Kinds)
	assert.Equal(t, ErrCodeUnknownValue, err.Code)
	assert.Contains(t, err.Suggestion, `Did you mean "dialog"?`)

	err = NewUnknownValueError("children[1].kind", "zzzzzzzz", Kinds)
	assert.NotContains(t, err.Suggestion, "Did you mean")
	assert.Contains(t, err.Suggestion, "dialog, spotlight")
}

func TestNewStepOutOfRangeError(t *testing.T) {
	t.Parallel()

	err := NewStepOutOfRangeError(5, 3)
	assert.Contains(t, err.Message, "initial_step 5")
	assert.Equal(t, "Use a value between 0 and 2.", err.Suggestion)
}

func TestNewParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		err     string
		message string
		context string
	}{
		{
			name:    "seq into map",
			format:  "yaml",
			err:     "yaml: line 4: cannot unmarshal !!seq into config.Definition",
			message: "expected an object but found a list",
			context: "tour.yaml (line 4)",
		},
		{
			name:    "string into int",
			format:  "yaml",
			err:     "yaml: unmarshal errors:\n  line 2: cannot unmarshal !!str `zero` into int",
			message: "unexpected string value",
			context: "tour.yaml (line 2)",
		},
		{
			name:    "toml",
			format:  "toml",
			err:     "toml: expected character =",
			message: "invalid TOML syntax",
			context: "tour.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewParseError("tour.yaml", tt.format, errors.New(tt.err))
			assert.Equal(t, ErrCodeDefinitionParse, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.context, err.Context)
			assert.NotEmpty(t, err.Suggestion)
		})
	}
}
