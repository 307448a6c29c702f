package errs

import (
	"github.com/jibsen/goarg/i18n"
)

// Scanner errors. Each is specialised with the offending flag and element through WithArgs.
var (
	ErrUnrecognizedLongOption  = i18n.NewError(ErrUnrecognizedLongOptionKey)
	ErrUnrecognizedShortOption = i18n.NewError(ErrUnrecognizedShortOptionKey)
	ErrExtraneousArgument      = i18n.NewError(ErrExtraneousArgumentKey)
	ErrMissingLongArgument     = i18n.NewError(ErrMissingLongArgumentKey)
	ErrMissingShortArgument    = i18n.NewError(ErrMissingShortArgumentKey)
	ErrInvalidInvocation       = i18n.NewError(ErrInvalidInvocationKey)
)

// Registry errors
var (
	ErrInvalidConfiguration = i18n.NewError(ErrInvalidConfigurationKey)
	ErrEmptyFlag            = i18n.NewError(ErrEmptyFlagKey)
	ErrOptionAlreadyExists  = i18n.NewError(ErrOptionAlreadyExistsKey)
)

// Completion errors
var (
	ErrUnsupportedShell = i18n.NewError(ErrUnsupportedShellKey)
)

// Conversion errors
var (
	ErrInvalidFormat = i18n.NewError(ErrInvalidFormatKey)
	ErrOutOfRange    = i18n.NewError(ErrOutOfRangeKey)
	ErrInvalidBase   = i18n.NewError(ErrInvalidBaseKey)
)
