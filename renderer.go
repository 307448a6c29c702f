package goarg

import (
	"io"
	"strings"

	"github.com/jibsen/goarg/internal/util"
)

// descriptionGap is the minimum space between the flags and the description
const descriptionGap = 2

// OptionHelp renders one block per option in registration order: the flags, then the description
// aligned in a common column. When lineWidth is positive descriptions are word-wrapped so lines
// do not exceed it, unless a single word is wider than the space left; a lineWidth narrower than
// the flags column is widened to it. A lineWidth of 0 disables wrapping.
//
//	  -h, --help          print this help and exit
//	  -o, --output FILE   write output to FILE
//	      --color[=WHEN]  colorize output
func (p *Parser) OptionHelp(lineWidth int) string {
	column := p.flagsColumnWidth()

	wrapWidth := 0
	if lineWidth > 0 {
		wrapWidth = max(lineWidth, column) - column
		if wrapWidth == 0 {
			wrapWidth = 1
		}
	}

	var sb strings.Builder
	for _, opt := range p.options {
		flags := opt.flags()
		sb.WriteString(flags)

		if opt.Description == "" {
			sb.WriteString("\n")
			continue
		}

		indent := column - util.DisplayWidth(flags)
		if indent < descriptionGap {
			sb.WriteString("\n")
			indent = column
		}

		for _, line := range util.WrapLines(opt.Description, wrapWidth) {
			if line != "" {
				sb.WriteString(strings.Repeat(" ", indent))
				sb.WriteString(line)
			}
			sb.WriteString("\n")
			indent = column
		}
	}

	return sb.String()
}

// PrintOptionHelp writes OptionHelp(lineWidth) to w
func (p *Parser) PrintOptionHelp(w io.Writer, lineWidth int) error {
	_, err := io.WriteString(w, p.OptionHelp(lineWidth))
	return err
}

// flagsColumnWidth is the column descriptions start at: room for "  -f, --" plus the longest
// long flag and argument and the gap, capped at the configured limit
func (p *Parser) flagsColumnWidth() int {
	longest := 0
	for _, opt := range p.options {
		width := 8 + util.DisplayWidth(opt.Long) + util.DisplayWidth(opt.ArgDisplay) + descriptionGap
		longest = max(longest, width)
	}

	return min(p.flagsColumnLimit, longest)
}
