package engine

import (
	"strings"

	"github.com/google/shlex"
)

// ShlexSplit splits a command line into argv-like parts, honoring POSIX
// quoting and backslash escapes. Unparseable input (e.g. an unterminated
// quote) yields an empty argv rather than an error — callers that cannot
// proceed without argv must gracefully produce no correction.
func ShlexSplit(input string) []string {
	parts, err := shlex.Split(input)
	if err != nil {
		return nil
	}
	return parts
}

// ShlexJoin joins argv parts back into a single command line, shell
// escaping any part that contains whitespace, quotes, or a shell
// metacharacter so a downstream shell re-splits it into the same parts.
func ShlexJoin(parts []string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = quoteIfNeeded(p)
	}
	return strings.Join(quoted, " ")
}

const shellMetacharacters = " \t\n'\"\\$`&|;<>()*?[]#~!{}"

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, shellMetacharacters)
}

// quoteIfNeeded wraps s in POSIX single quotes when it contains
// anything a shell would otherwise re-split or interpret, escaping
// embedded single quotes with the standard '\'' trick. This is the
// same algorithm as the teacher's utils.ShellQuote helper.
func quoteIfNeeded(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
