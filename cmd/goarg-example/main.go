// Command goarg-example shows how to declare options, parse os.Args and print help with goarg.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jibsen/goarg"
	"github.com/jibsen/goarg/convert"
	"golang.org/x/term"
)

const (
	usage            = "usage: goarg-example [options] POSITIONAL_ARG..."
	defaultHelpWidth = 78
)

func newParser() *goarg.Parser {
	return goarg.NewParser().
		AddOption("h", "help", "", "print this help and exit").
		AddOption("r", "required", "ARG", "option with required argument").
		AddOption("o", "optional", "[ARG]", "option with optional argument").
		AddOption("s", "size", "=N", "size in bytes, a k, m or g suffix multiplies by 1024, 1024^2 or 1024^3").
		AddOption("", "since", "DATE", "only consider entries after DATE\nany common date or time layout is accepted").
		AddOption("", "completion", "SHELL", "print a completion script for SHELL and exit\nSHELL is one of bash, zsh, fish or powershell")
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, helpWidth()))
}

func run(argv []string, stdout, stderr io.Writer, width int) int {
	parser := newParser()

	res, err := parser.ParseArgv(argv)
	if err != nil {
		fail(stderr, err)
		return 1
	}

	if res.Contains("help") {
		fmt.Fprintf(stdout, "%s\n\nExample program for goarg.\n\n", usage)
		if err := parser.PrintOptionHelp(stdout, width); err != nil {
			return 1
		}
		return 0
	}

	if shell, ok := res.LastArgument("completion"); ok {
		script, err := parser.CompletionScript(shell, argv[0])
		if err != nil {
			fail(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, script)
		return 0
	}

	if len(res.Positional()) < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	if s, ok := res.LastArgument("size"); ok {
		size, err := convert.ToInteger[uint64](s, convert.WithBase(0), convert.WithMultiplier(convert.Binary))
		if err != nil {
			fail(stderr, fmt.Errorf("--size: %w", err))
			return 1
		}
		fmt.Fprintf(stdout, "size is %d byte(s)\n", size)
	}

	if s, ok := res.LastArgument("since"); ok {
		since, err := convert.ToTime(s)
		if err != nil {
			fail(stderr, fmt.Errorf("--since: %w", err))
			return 1
		}
		fmt.Fprintf(stdout, "since %s\n", since.Format(time.RFC3339))
	}

	for _, opt := range res.Options() {
		fmt.Fprintf(stdout, "option '%s' appeared %d time(s)", opt.Name, opt.Count)
		if len(opt.Arguments) > 0 {
			fmt.Fprint(stdout, " with argument(s):")
			for _, arg := range opt.Arguments {
				fmt.Fprintf(stdout, " '%s'", arg)
			}
		}
		fmt.Fprintln(stdout)
	}

	for _, arg := range res.Positional() {
		fmt.Fprintf(stdout, "positional argument '%s'\n", arg)
	}

	return 0
}

func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("goarg-example:"), err)
}

// helpWidth returns the width of the terminal on stdout, or defaultHelpWidth when stdout
// is not a terminal
func helpWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultHelpWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultHelpWidth
	}

	return width
}
