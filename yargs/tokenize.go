package yargs

import (
	"strings"

	"github.com/google/shlex"
)

// Tokenize splits a command line into arguments using shell quoting rules.
// A '#' is kept as part of the word it appears in and never starts a comment.
func Tokenize(input string) ([]string, error) {
	return shlex.Split(escapeComments(input))
}

// escapeComments backslash-escapes every unquoted '#' so shlex reads it
// literally.
func escapeComments(input string) string {
	if !strings.Contains(input, "#") {
		return input
	}

	var b strings.Builder
	b.Grow(len(input) + 4)

	var quote rune
	escaped := false
	for _, r := range input {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else if r == '\\' && quote == '"' {
				escaped = true
			}
		case r == '\\':
			escaped = true
		case r == '\'' || r == '"':
			quote = r
		case r == '#':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseString tokenizes input and parses it like Parse
func ParseString(input string, opts Options) map[string]any {
	return DetailedString(input, opts).Argv
}

// DetailedString tokenizes input and parses it like Detailed. A tokenizer
// failure parses nothing and is reported on Result.Error.
func DetailedString(input string, opts Options) *Result {
	args, err := Tokenize(input)
	if err == nil {
		return Detailed(args, opts)
	}

	s := newState(&opts, nil)
	s.recordError(newParseError(ErrorTypeTokenize, "", err.Error()).WithCause(err))
	s.run()
	return s.result()
}
