// Package errs defines the translation keys and sentinel errors reported by goarg.
package errs

const (
	prefixKey = "goarg"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Scanner errors
const (
	ErrUnrecognizedLongOptionKey  = ErrorPrefixKey + ".unrecognized_long_option"
	ErrUnrecognizedShortOptionKey = ErrorPrefixKey + ".unrecognized_short_option"
	ErrExtraneousArgumentKey      = ErrorPrefixKey + ".extraneous_argument"
	ErrMissingLongArgumentKey     = ErrorPrefixKey + ".missing_long_argument"
	ErrMissingShortArgumentKey    = ErrorPrefixKey + ".missing_short_argument"
	ErrInvalidInvocationKey       = ErrorPrefixKey + ".invalid_invocation"
)

// Registry errors
const (
	ErrInvalidConfigurationKey = ErrorPrefixKey + ".invalid_configuration"
	ErrEmptyFlagKey            = ErrorPrefixKey + ".empty_flag"
	ErrOptionAlreadyExistsKey  = ErrorPrefixKey + ".option_already_exists"
)

// Completion errors
const (
	ErrUnsupportedShellKey = ErrorPrefixKey + ".unsupported_shell"
)

// Conversion errors
const (
	ErrInvalidFormatKey = ParseErrorPathKey + ".invalid_format"
	ErrOutOfRangeKey    = ParseErrorPathKey + ".out_of_range"
	ErrInvalidBaseKey   = ParseErrorPathKey + ".invalid_base"
)
