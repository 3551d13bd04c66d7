// Package sed holds the correction rules for the "sed" command.
package sed

import (
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "sed" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"sed"},
		Rules: []engine.Rule{
			unterminatedS{},
		},
	}
}

// unterminatedS appends the missing trailing slash to a "s/from/to"
// substitution expression.
type unterminatedS struct{}

func (unterminatedS) ID() string { return "SedUnterminatedS" }

func (r unterminatedS) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unterminatedS) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "unterminated")
}

func (unterminatedS) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := -1
	for i, part := range argv {
		if (strings.HasPrefix(part, "s/") || strings.HasPrefix(part, "-es/")) && !strings.HasSuffix(part, "/") {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil
	}
	newCommand := append([]string(nil), argv...)
	newCommand[pos] = newCommand[pos] + "/"
	return []engine.Correction{engine.PartsCorrection(newCommand)}
}
