package goarg

import (
	"strings"
	"unicode/utf8"

	"github.com/jibsen/goarg/errs"
	"github.com/jibsen/goarg/internal/parse"
)

// scan walks the arguments once. offset is added to every reported index.
func (p *Parser) scan(state parse.State, offset int) (*Result, error) {
	res := newResult()

	for state.Advance() {
		idx := state.Pos() + offset
		arg := state.CurrentArg()

		switch {
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			p.logger.Debug("positional argument", "index", idx, "arg", arg)
			res.addPositional(arg)
		case arg == "--":
			rest := state.Remaining()
			p.logger.Debug("end of options", "index", idx, "remaining", len(rest))
			res.addPositional(rest...)
			return res, nil
		case strings.HasPrefix(arg, "--"):
			if err := p.scanLong(state, arg[2:], res); err != nil {
				return nil, p.fail(idx, err)
			}
		default:
			if err := p.scanShortCluster(state, arg[1:], res); err != nil {
				return nil, p.fail(idx, err)
			}
		}
	}

	return res, nil
}

// scanLong handles "--name" and "--name=argument"
func (p *Parser) scanLong(state parse.State, body string, res *Result) error {
	name, argument, inline := strings.Cut(body, "=")

	opt := p.findLong(name)
	if opt == nil {
		return errs.ErrUnrecognizedLongOption.WithArgs(name)
	}

	if inline {
		if !opt.TakesArgument() {
			return errs.ErrExtraneousArgument.WithArgs(body)
		}
		p.logger.Debug("long option", "name", name, "argument", argument)
		res.addArgument(name, argument)
		return nil
	}

	if opt.RequiresArgument() {
		next, ok := nextArgument(state)
		if !ok {
			return errs.ErrMissingLongArgument.WithArgs(body)
		}
		p.logger.Debug("long option", "name", name, "argument", next)
		res.addArgument(name, next)
		return nil
	}

	p.logger.Debug("long option", "name", name)
	res.addOccurrence(name)

	return nil
}

// scanShortCluster handles "-abc" where each character is a short flag. The first flag taking
// an argument consumes the rest of the cluster, or the next element when it requires one.
func (p *Parser) scanShortCluster(state parse.State, cluster string, res *Result) error {
	for pos := 0; pos < len(cluster); {
		_, size := utf8.DecodeRuneInString(cluster[pos:])
		flag := cluster[pos : pos+size]
		pos += size

		opt := p.findShort(flag)
		if opt == nil {
			return errs.ErrUnrecognizedShortOption.WithArgs(flag, cluster)
		}

		if !opt.TakesArgument() {
			p.logger.Debug("short option", "flag", flag, "name", opt.Long)
			res.addOccurrence(opt.Long)
			continue
		}

		if pos < len(cluster) {
			p.logger.Debug("short option", "flag", flag, "name", opt.Long, "argument", cluster[pos:])
			res.addArgument(opt.Long, cluster[pos:])
			return nil
		}

		if !opt.RequiresArgument() {
			p.logger.Debug("short option", "flag", flag, "name", opt.Long)
			res.addOccurrence(opt.Long)
			return nil
		}

		next, ok := nextArgument(state)
		if !ok {
			return errs.ErrMissingShortArgument.WithArgs(flag, cluster)
		}
		p.logger.Debug("short option", "flag", flag, "name", opt.Long, "argument", next)
		res.addArgument(opt.Long, next)

		return nil
	}

	return nil
}

// nextArgument consumes the element after the current one, which is taken verbatim even when
// it looks like an option
func nextArgument(state parse.State) (string, bool) {
	next, ok := state.Peek()
	if ok {
		state.Advance()
	}

	return next, ok
}

func (p *Parser) fail(idx int, err error) *ParseError {
	p.logger.Debug("parse failed", "index", idx, "error", err)

	return &ParseError{
		OriginatingArg: idx,
		Err:            err,
	}
}
