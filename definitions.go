package goarg

import (
	"log/slog"

	"github.com/jibsen/goarg/types"
)

// DefaultFlagsColumnLimit is the widest the flags column of OptionHelp grows. Options whose flags
// do not fit start their description on the next line.
const DefaultFlagsColumnLimit = 29

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// Option describes a registered command-line option
type Option struct {
	// Short is the single character used as -f, or "" when the option has no short form
	Short string
	// Long is the name used as --name and the key under which occurrences are reported.
	// It equals Short when no long flag was registered.
	Long string
	// LongShown reports whether a long flag was registered and is therefore rendered in help
	LongShown bool
	// Mode tells whether the option takes no, an optional or a required argument
	Mode types.ArgMode
	// ArgDisplay is the argument as rendered after the flags in help, e.g. " FILE", "=FILE" or "[=FILE]"
	ArgDisplay string
	// Description is the help text; a '\n' starts a new paragraph
	Description string
}

// Parser holds the registered options. It is safe for concurrent use by Parse, ParseArgv
// and OptionHelp once all options are added.
type Parser struct {
	options          []Option
	errors           []error
	logger           *slog.Logger
	flagsColumnLimit int
}

// ParsedOption holds every occurrence of one option in a parsed argument list
type ParsedOption struct {
	// Name is the option's long flag
	Name string
	// Count is the number of occurrences, always at least 1
	Count int
	// Arguments holds the arguments of the occurrences which carried one, in order
	Arguments []string
}

// Result is the outcome of a successful parse
type Result struct {
	options    []ParsedOption
	lookup     map[string]int
	positional []string
}

// ParseError is returned by Parse and ParseArgv when the argument list is rejected
type ParseError struct {
	// OriginatingArg is the index of the offending element. For ParseArgv it indexes argv,
	// where 0 means there was no program name.
	OriginatingArg int
	// Err is one of the errs sentinels, specialised with the offending flag
	Err error
}

// Error returns the translated message of the underlying error
func (e *ParseError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}
