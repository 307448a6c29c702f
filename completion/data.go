// Package completion generates shell completion scripts for a flat set of goarg options
package completion

import "github.com/jibsen/goarg/types"

// Flag describes one option to complete
type Flag struct {
	Short       string        // Single character short flag, or ""
	Long        string        // Long flag, or "" when only the short form exists
	ArgName     string        // Name of the argument shown by shells which support it, e.g. "FILE"
	Mode        types.ArgMode // Whether the option takes an argument
	Description string        // First line of the help text
}

// CompletionData is used to store the completion data for all configured options
type CompletionData struct {
	Flags []Flag
}

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}
