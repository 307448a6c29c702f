package completion

import (
	"path/filepath"
	"sort"

	"github.com/jibsen/goarg/errs"
)

var generators = map[string]Generator{
	"bash":       &BashGenerator{},
	"zsh":        &ZshGenerator{},
	"fish":       &FishGenerator{},
	"powershell": &PowerShellGenerator{},
}

// Shells returns the names of the supported shells in alphabetical order
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for name := range generators {
		shells = append(shells, name)
	}
	sort.Strings(shells)

	return shells
}

// GetGenerator returns the generator for shell, or errs.ErrUnsupportedShell
func GetGenerator(shell string) (Generator, error) {
	g, ok := generators[shell]
	if !ok {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return g, nil
}

// Generate renders the completion script of shell for programName. Only the base name of
// programName is used, so os.Args[0] may be passed directly.
func Generate(shell, programName string, data CompletionData) (string, error) {
	g, err := GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(filepath.Base(programName), data), nil
}
