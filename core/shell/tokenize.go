// Package shell implements the interpreter: splitting lines into words,
// finding executables on the search path, running them and the prompt loop.
package shell

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
)

const (
	// WordSeparators split an input line into words.
	WordSeparators = " \t\r\n\v\f"
	// PathListSeparator splits the search path into directories.
	PathListSeparator = ":"
)

// Tokenize splits input at every run of one or more separator characters.
// Separators never appear in the result and there are no empty tokens, so
// an empty or all-separator input yields an empty slice.
func Tokenize(input, separators string) []string {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Splitter turns an input line into argv.
type Splitter func(line string) ([]string, error)

// SplitFields splits a line on whitespace only.
func SplitFields(line string) ([]string, error) {
	return Tokenize(line, WordSeparators), nil
}

// SplitQuoted splits a line on whitespace, honoring POSIX quotes and
// backslash escapes.
func SplitQuoted(line string) ([]string, error) {
	return shlex.Split(line, true)
}

// Word splitting modes accepted by SplitterFor.
const (
	SplitModeFields = "fields"
	SplitModeQuoted = "quoted"
)

// SplitterFor returns the Splitter for a configured mode, the empty mode
// selects SplitFields.
func SplitterFor(mode string) (Splitter, error) {
	switch mode {
	case "", SplitModeFields:
		return SplitFields, nil
	case SplitModeQuoted:
		return SplitQuoted, nil
	default:
		return nil, fmt.Errorf("unknown word splitting mode %q", mode)
	}
}
