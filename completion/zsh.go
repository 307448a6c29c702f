package completion

import (
	"fmt"
	"strings"

	"github.com/jibsen/goarg/types"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := identifier(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

__%s_completion() {
    _arguments -s -S \`, programName, fn))

	for _, flag := range data.Flags {
		script.WriteString("\n        ")
		script.WriteString(zshSpec(flag))
		script.WriteString(" \\")
	}

	script.WriteString(fmt.Sprintf(`
        '*:argument:_files'
}

__%s_completion "$@"
`, fn))

	return script.String()
}

// zshSpec renders an _arguments spec. Options may repeat, so every spec starts with '*'.
func zshSpec(flag Flag) string {
	shortSuffix, longSuffix, argSpec := "", "", ""
	arg := strings.NewReplacer(":", "", "'", "").Replace(flag.ArgName)
	if arg == "" {
		arg = "argument"
	}

	switch flag.Mode {
	case types.ArgRequired:
		shortSuffix, longSuffix = "+", "="
		argSpec = ":" + arg + ":_files"
	case types.ArgOptional:
		shortSuffix, longSuffix = "-", "=-"
		argSpec = "::" + arg + ":_files"
	}

	var forms []string
	if flag.Short != "" {
		forms = append(forms, "-"+flag.Short+shortSuffix)
	}
	if flag.Long != "" {
		forms = append(forms, "--"+flag.Long+longSuffix)
	}

	desc := "[" + escapeZsh(firstLine(flag.Description)) + "]" + argSpec
	if len(forms) == 1 {
		return "'*" + forms[0] + desc + "'"
	}

	return "'*'{" + strings.Join(forms, ",") + "}'" + desc + "'"
}
