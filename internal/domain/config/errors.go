package config

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeDefinitionNotFound = "DEFINITION_NOT_FOUND"
	ErrCodeDefinitionParse    = "DEFINITION_PARSE"
	ErrCodeUnsupportedFormat  = "UNSUPPORTED_FORMAT"
	ErrCodeUnsupportedSchema  = "UNSUPPORTED_SCHEMA"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeUnknownValue       = "UNKNOWN_VALUE"
	ErrCodeStepOutOfRange     = "STEP_OUT_OF_RANGE"
)

// UserError is an error meant to be read by the person who wrote the tour
// definition: what went wrong, where, and how to fix it.
type UserError struct {
	Code       string
	Message    string
	Context    string // file path, field path or line
	Suggestion string
	Underlying error
}

// Error returns the message with its location.
func (e *UserError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is matches any UserError with the same code.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns the error with code, location and suggestion on separate
// lines.
func (e *UserError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}
	return b.String()
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code, message string) *UserError {
	return &UserError{Code: code, Message: message}
}

// WithContext returns a copy with the location set.
func (e *UserError) WithContext(ctx string) *UserError {
	c := *e
	c.Context = ctx
	return &c
}

// WithSuggestion returns a copy with the suggestion set.
func (e *UserError) WithSuggestion(suggestion string) *UserError {
	c := *e
	c.Suggestion = suggestion
	return &c
}

// WithUnderlying returns a copy wrapping err.
func (e *UserError) WithUnderlying(err error) *UserError {
	c := *e
	c.Underlying = err
	return &c
}

// ErrorList accumulates every problem found in a definition so they can be
// reported together.
type ErrorList struct {
	errors []*UserError
}

// NewErrorList creates an empty ErrorList.
func NewErrorList() *ErrorList {
	return &ErrorList{errors: make([]*UserError, 0)}
}

// Add adds an error to the list.
func (l *ErrorList) Add(err *UserError) {
	if err != nil {
		l.errors = append(l.errors, err)
	}
}

// AddValidation adds a validation error for field.
func (l *ErrorList) AddValidation(field, message, suggestion string) {
	l.Add(&UserError{
		Code:       ErrCodeValidationFailed,
		Message:    fmt.Sprintf("%s: %s", field, message),
		Context:    field,
		Suggestion: suggestion,
	})
}

// HasErrors returns true if there are any errors.
func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Len returns the number of errors.
func (l *ErrorList) Len() int {
	return len(l.errors)
}

// Errors returns a copy of the collected errors.
func (l *ErrorList) Errors() []*UserError {
	out := make([]*UserError, len(l.errors))
	copy(out, l.errors)
	return out
}

// Error implements the error interface.
func (l *ErrorList) Error() string {
	switch len(l.errors) {
	case 0:
		return ""
	case 1:
		return l.errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:\n", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Format returns the detailed form of every error.
func (l *ErrorList) Format() string {
	if len(l.errors) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d error(s):\n", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "\n--- Error %d ---\n%s\n", i+1, err.Format())
	}
	return b.String()
}

// AsError returns the list as an error, or nil if empty.
func (l *ErrorList) AsError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

// NewDefinitionNotFoundError reports a missing definition file.
func NewDefinitionNotFoundError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeDefinitionNotFound,
		Message:    fmt.Sprintf("tour definition not found: %s", path),
		Context:    path,
		Suggestion: "Run 'tourguide init' to scaffold a tour, or pass the path of an existing definition.",
	}
}

// NewUnsupportedFormatError reports a definition file with an unknown
// extension.
func NewUnsupportedFormatError(path string) *UserError {
	return &UserError{
		Code:       ErrCodeUnsupportedFormat,
		Message:    "unsupported definition format",
		Context:    path,
		Suggestion: "Use a .yaml, .yml or .toml file.",
	}
}

// NewSchemaError reports a schema version this build cannot read.
func NewSchemaError(version string) *UserError {
	return &UserError{
		Code:       ErrCodeUnsupportedSchema,
		Message:    fmt.Sprintf("unsupported schema version %q", version),
		Context:    "schema",
		Suggestion: fmt.Sprintf("Set 'schema: %s' or upgrade tourguide.", SchemaVersion),
	}
}

// NewUnknownValueError reports a value outside a closed set, suggesting the
// closest allowed one.
func NewUnknownValueError(field, value string, allowed []string) *UserError {
	suggestion := fmt.Sprintf("Allowed values: %s", strings.Join(allowed, ", "))
	if guess := Suggest(value, allowed); guess != "" {
		suggestion = fmt.Sprintf("Did you mean %q? %s", guess, suggestion)
	}
	return &UserError{
		Code:       ErrCodeUnknownValue,
		Message:    fmt.Sprintf("%s: unknown value %q", field, value),
		Context:    field,
		Suggestion: suggestion,
	}
}

// NewStepOutOfRangeError reports an initial step that no dialog occupies.
func NewStepOutOfRangeError(step, total int) *UserError {
	return &UserError{
		Code:       ErrCodeStepOutOfRange,
		Message:    fmt.Sprintf("initial_step %d is outside the %d dialog step(s)", step, total),
		Context:    "initial_step",
		Suggestion: fmt.Sprintf("Use a value between 0 and %d.", max(total-1, 0)),
	}
}

// IsUserError checks if an error is a UserError with a specific code.
func IsUserError(err error, code string) bool {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Code == code
	}
	return false
}

// GetUserError extracts a UserError from an error chain, if present.
func GetUserError(err error) *UserError {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}

// NewParseError translates decoder errors into something a tour author can
// act on. format is "yaml" or "toml".
func NewParseError(path, format string, err error) *UserError {
	errStr := err.Error()
	message := fmt.Sprintf("invalid %s syntax", strings.ToUpper(format))
	suggestion := "Check indentation, missing colons, and quote strings that contain special characters."

	switch {
	case strings.Contains(errStr, "cannot unmarshal !!map into []config.ChildSpec"),
		strings.Contains(errStr, "cannot unmarshal !!map into []config.Region"):
		message = "expected a list but found an object"
		suggestion = `'children' and 'layout' are lists. Prefix every entry with '- ':

  children:
    - kind: dialog
      target: "#sidebar"`
	case strings.Contains(errStr, "cannot unmarshal !!seq into"):
		message = "expected an object but found a list"
		suggestion = "Check that you're using 'key: value' format instead of '- item' list format."
	case strings.Contains(errStr, "cannot unmarshal !!str"):
		message = "unexpected string value"
		suggestion = "Numbers and booleans must not be quoted (initial_step: 0, default_active: true)."
	case strings.Contains(errStr, "found character that cannot start"):
		message = "invalid character in YAML"
		suggestion = `Quote selectors: target: "#sidebar". An unquoted '#' starts a comment.`
	case format == "toml":
		suggestion = "Check that strings are quoted and that list entries use [[children]] tables."
	}

	context := path
	if idx := strings.Index(errStr, "line "); idx >= 0 {
		line := strings.FieldsFunc(errStr[idx+len("line "):], func(r rune) bool {
			return r == ':' || r == ',' || r == ' ' || r == ')'
		})
		if len(line) > 0 {
			context = fmt.Sprintf("%s (line %s)", path, line[0])
		}
	}

	return &UserError{
		Code:       ErrCodeDefinitionParse,
		Message:    message,
		Context:    context,
		Suggestion: suggestion,
		Underlying: err,
	}
}
