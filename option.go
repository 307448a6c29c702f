package goarg

import (
	"strings"
	"unicode/utf8"

	"github.com/jibsen/goarg/types"
)

// newOption normalizes the registration arguments. argSpec selects the argument mode and
// how the argument is shown in help:
//
//	"f" "foo" "ARG"    -f, --foo ARG       required
//	"f" ""    "ARG"    -f ARG              required
//	"f" "foo" "=ARG"   -f, --foo=ARG       required
//	"f" ""    "=ARG"   -fARG               required
//	"f" "foo" "[ARG]"  -f, --foo[=ARG]     optional
//	"f" ""    "[=ARG]" -f[ARG]             optional
func newOption(short, long, argSpec, description string) Option {
	if short != "" {
		_, size := utf8.DecodeRuneInString(short)
		short = short[:size]
	}

	display := argSpec
	switch {
	case strings.HasPrefix(display, "="):
		if long == "" {
			display = display[1:]
		}
	case strings.HasPrefix(display, "["):
		if long == "" {
			if strings.HasPrefix(display, "[=") {
				display = "[" + display[2:]
			}
		} else if !strings.HasPrefix(display, "[=") {
			display = "[=" + display[1:]
		}
	case display != "":
		display = " " + display
	}

	opt := Option{
		Short:       short,
		Long:        long,
		LongShown:   long != "" && long != short,
		ArgDisplay:  display,
		Description: description,
	}

	if opt.Long == "" {
		opt.Long = short
	}

	switch {
	case display == "":
		opt.Mode = types.ArgNone
	case strings.HasPrefix(display, "["):
		opt.Mode = types.ArgOptional
	default:
		opt.Mode = types.ArgRequired
	}

	return opt
}

// TakesArgument reports whether the option accepts an argument at all
func (o Option) TakesArgument() bool {
	return o.Mode.TakesArgument()
}

// RequiresArgument reports whether the option must be given an argument
func (o Option) RequiresArgument() bool {
	return o.Mode == types.ArgRequired
}

// flags renders the flags column text, e.g. "  -f, --foo=ARG"
func (o Option) flags() string {
	var sb strings.Builder
	if o.Short != "" {
		sb.WriteString("  -")
		sb.WriteString(o.Short)
	} else {
		sb.WriteString("    ")
	}

	if o.LongShown {
		if o.Short != "" {
			sb.WriteString(", --")
		} else {
			sb.WriteString("  --")
		}
		sb.WriteString(o.Long)
	}

	sb.WriteString(o.ArgDisplay)

	return sb.String()
}
