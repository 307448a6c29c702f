package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    if (!$wordToComplete.StartsWith('-')) {
        return
    }

    @(`, escapePowerShell(programName)))

	for _, flag := range data.Flags {
		desc := firstLine(flag.Description)
		if desc == "" {
			desc = flag.Long
		}
		if desc == "" {
			desc = flag.Short
		}
		for _, name := range names(flag) {
			script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')`,
				escapePowerShell(name), escapePowerShell(name), escapePowerShell(desc)))
		}
	}

	script.WriteString(`
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}
