package goarg

import (
	"strings"

	"github.com/jibsen/goarg/completion"
)

// CompletionData describes the registered options for the completion generators
func (p *Parser) CompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Flags: make([]completion.Flag, 0, len(p.options)),
	}

	for _, opt := range p.options {
		flag := completion.Flag{
			Short:       opt.Short,
			ArgName:     strings.Trim(opt.ArgDisplay, " =[]"),
			Mode:        opt.Mode,
			Description: opt.Description,
		}
		if opt.LongShown {
			flag.Long = opt.Long
		}
		data.Flags = append(data.Flags, flag)
	}

	return data
}

// CompletionScript renders a completion script for shell ("bash", "zsh", "fish" or "powershell")
func (p *Parser) CompletionScript(shell, programName string) (string, error) {
	return completion.Generate(shell, programName, p.CompletionData())
}
