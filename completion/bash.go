package completion

import (
	"fmt"
	"strings"

	"github.com/jibsen/goarg/types"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := identifier(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

__%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
`, fn))

	// Flags whose required argument is the next word
	var takesNext []string
	for _, flag := range data.Flags {
		if flag.Mode == types.ArgRequired {
			takesNext = append(takesNext, names(flag)...)
		}
	}

	if len(takesNext) > 0 {
		script.WriteString(fmt.Sprintf(`
    case "${prev}" in
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;
    esac
`, strings.Join(takesNext, "|")))
	}

	var all []string
	for _, flag := range data.Flags {
		all = append(all, names(flag)...)
	}

	script.WriteString(fmt.Sprintf(`
    if [[ "$cur" == -* ]]; then
        local flags=(%s)
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%s_completion %s
`, strings.Join(all, " "), fn, programName))

	return script.String()
}
