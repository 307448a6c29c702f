package util

import (
	"strings"

	"github.com/apparentlymart/go-textseg/v15/textseg"
	"github.com/mitchellh/go-wordwrap"
)

// minWrapWidth is the narrowest width at which the wrapper still breaks between words
const minWrapWidth = 2

// DisplayWidth returns the number of user-perceived characters (grapheme clusters) in s
func DisplayWidth(s string) int {
	n, err := textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return len([]rune(s))
	}

	return n
}

// WrapLines splits s into paragraphs at each '\n' and word-wraps every paragraph to width.
// Lines only break at spaces, so a word wider than width stays on a line of its own.
// A width <= 0 disables wrapping. Leading and trailing spaces of each line are dropped.
func WrapLines(s string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		paragraph = strings.Trim(paragraph, " ")
		if width <= 0 || paragraph == "" {
			lines = append(lines, paragraph)
			continue
		}

		wrapped := wordwrap.WrapString(paragraph, uint(max(width, minWrapWidth)))
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, strings.Trim(line, " "))
		}
	}

	return lines
}
