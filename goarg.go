// Package goarg is a small getopt-style command-line parser.
//
// Options are registered with a short flag (-f), a long flag (--foo) or both, and an argument
// spec which selects whether the option takes no argument, an optional argument or a required
// one:
//
//	parser := goarg.NewParser().
//		AddOption("h", "help", "", "print this help and exit").
//		AddOption("o", "output", "FILE", "write output to FILE").
//		AddOption("", "color", "[WHEN]", "colorize output")
//
//	res, err := parser.ParseArgv(os.Args)
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//
//	if res.Contains("help") {
//		fmt.Print(parser.OptionHelp(80))
//	}
//
// Short flags may be clustered (-abc), an argument may be attached (-oFILE, --output=FILE) or,
// for required arguments, taken from the next element (-o FILE, --output FILE). The element "--"
// ends option scanning and a lone "-" is a positional argument. Optional arguments are only ever
// taken from the same element.
package goarg

import (
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/jibsen/goarg/errs"
	"github.com/jibsen/goarg/internal/parse"
)

// NewParser returns a Parser without options
func NewParser() *Parser {
	return &Parser{
		options:          []Option{},
		errors:           []error{},
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		flagsColumnLimit: DefaultFlagsColumnLimit,
	}
}

// AddOption registers an option and returns the Parser so calls can be chained.
//
// short is truncated to its first character. When long is empty the option is reported under
// its short flag, which is then also accepted as --short but is not shown in help.
// argSpec is empty for options without an argument, enclosed in brackets ("[ARG]") for
// an optional argument and anything else for a required one. A leading '=' ("=ARG") renders
// the required argument attached to the flag in help.
//
// Invalid registrations (no flag at all, or a flag already in use) are not added; they are
// reported by Err and make Parse and ParseArgv fail.
func (p *Parser) AddOption(short, long, argSpec, description string) *Parser {
	if err := p.addOption(short, long, argSpec, description); err != nil {
		p.addError(err)
	}

	return p
}

// Err returns the registration errors collected by AddOption, or nil
func (p *Parser) Err() error {
	return errors.Join(p.errors...)
}

// Options returns a copy of the registered options in registration order
func (p *Parser) Options() []Option {
	return slices.Clone(p.options)
}

// Parse parses args, which must not include the program name. A *ParseError is returned
// for the first element that cannot be parsed; its OriginatingArg is a 0-based index into args.
func (p *Parser) Parse(args []string) (*Result, error) {
	if err := p.checkConfiguration(); err != nil {
		return nil, err
	}

	return p.scan(parse.NewState(args), 0)
}

// ParseArgv parses a full argument vector whose first element is the program name, like
// os.Args. Error indices refer to argv; an empty argv is reported at index 0.
func (p *Parser) ParseArgv(argv []string) (*Result, error) {
	if err := p.checkConfiguration(); err != nil {
		return nil, err
	}

	if len(argv) == 0 {
		return nil, p.fail(0, errs.ErrInvalidInvocation)
	}

	return p.scan(parse.NewState(argv[1:]), 1)
}

func (p *Parser) addOption(short, long, argSpec, description string) error {
	if short == "" && long == "" {
		return errs.ErrEmptyFlag
	}

	opt := newOption(short, long, argSpec, description)

	if opt.Short != "" && p.findShort(opt.Short) != nil {
		return errs.ErrOptionAlreadyExists.WithArgs("-" + opt.Short)
	}

	if p.findLong(opt.Long) != nil {
		return errs.ErrOptionAlreadyExists.WithArgs("--" + opt.Long)
	}

	p.options = append(p.options, opt)
	p.logger.Debug("option registered",
		"short", opt.Short, "long", opt.Long, "mode", opt.Mode.String())

	return nil
}

func (p *Parser) addError(err error) {
	p.logger.Warn("option rejected", "error", err)
	p.errors = append(p.errors, err)
}

func (p *Parser) checkConfiguration() error {
	if len(p.errors) == 0 {
		return nil
	}

	return p.fail(0, errs.ErrInvalidConfiguration.Wrap(p.Err()))
}

func (p *Parser) findLong(name string) *Option {
	for i := range p.options {
		if p.options[i].Long == name {
			return &p.options[i]
		}
	}

	return nil
}

func (p *Parser) findShort(flag string) *Option {
	for i := range p.options {
		if p.options[i].Short == flag {
			return &p.options[i]
		}
	}

	return nil
}
