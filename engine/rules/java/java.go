// Package java holds the correction rules for invoking the "java"
// launcher directly.
package java

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "java" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"java"},
		Rules: []engine.Rule{
			dotJava{},
		},
	}
}

var dotJavaRE = regexp.MustCompile(`.+\.java$`)

// dotJava strips a trailing ".java" extension from the class argument,
// since java expects a class name, not a source file name.
type dotJava struct{}

func (dotJava) ID() string { return "DotJava" }

func (r dotJava) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (dotJava) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return dotJavaRE.MatchString(cmd.Input()) &&
		strings.Contains(cmd.LowercaseOutput(), "could not find or load main")
}

func (dotJava) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := -1
	for i, part := range argv {
		if strings.HasSuffix(part, ".java") {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil
	}
	newParts := append([]string(nil), argv...)
	newParts[pos] = strings.TrimSuffix(newParts[pos], ".java")
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
