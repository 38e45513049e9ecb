package yargs

// ErrorType represents error categories recorded during a parse.
// All of them are non-fatal: parsing completes and the first one is reported.
type ErrorType string

const (
	ErrorTypeInvalidConfiguration ErrorType = "invalid_configuration"
	ErrorTypeNotEnoughArguments   ErrorType = "not_enough_arguments"
	ErrorTypeConfigFile           ErrorType = "config_file"
	ErrorTypeCoercion             ErrorType = "coercion"
	ErrorTypeTokenize             ErrorType = "tokenize"
)

// ParseError is the error surfaced on Result.Error
type ParseError struct {
	Type    ErrorType
	Message string
	Key     string
	Cause   error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newParseError creates a ParseError with the given type, key and message
func newParseError(errType ErrorType, key, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Key:     key,
		Message: message,
	}
}

// WithCause attaches an underlying cause to the error
func (e *ParseError) WithCause(cause error) *ParseError {
	e.Cause = cause
	return e
}
