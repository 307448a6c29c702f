package goarg

import (
	"log/slog"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithLogger(slog.Default()),
//		WithOption("n", "noarg", "", "option without argument"),
//		WithOption("o", "optarg", "[ARG]", "option with optional argument"),
//		WithOption("r", "reqarg", "ARG", "option with required argument"))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithOption is a wrapper for AddOption which fails NewParserWith on invalid registrations
func WithOption(short, long, argSpec, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.addOption(short, long, argSpec, description)
	}
}

// WithLogger sets the logger receiving registration warnings and per-element debug records.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// WithFlagsColumnLimit sets the widest the flags column of OptionHelp may grow
// (DefaultFlagsColumnLimit by default). Values below 1 are ignored.
func WithFlagsColumnLimit(limit int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if limit > 0 {
			parser.flagsColumnLimit = limit
		}
	}
}
