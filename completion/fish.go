package completion

import (
	"fmt"
	"strings"

	"github.com/jibsen/goarg/types"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.Long != "" {
			cmd = fmt.Sprintf("%s -l %s", cmd, flag.Long)
		}
		if flag.Mode == types.ArgRequired {
			cmd += " -r"
		}
		if desc := firstLine(flag.Description); desc != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(desc))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
