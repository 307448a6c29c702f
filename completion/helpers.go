package completion

import (
	"strings"
	"unicode"
)

// names returns the flags of f as typed on the command line, short first
func names(f Flag) []string {
	var n []string
	if f.Short != "" {
		n = append(n, "-"+f.Short)
	}
	if f.Long != "" {
		n = append(n, "--"+f.Long)
	}

	return n
}

// identifier turns a program name into something usable as a shell function name
func identifier(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, programName)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	return strings.ReplaceAll(desc, "'", `\'`)
}

func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	s = strings.ReplaceAll(s, ":", `\:`)
	return escapeSingleQuoted(s)
}
