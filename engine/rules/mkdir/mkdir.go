// Package mkdir holds the correction rules for the "mkdir" command.
package mkdir

import (
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "mkdir" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"mkdir"},
		Rules: []engine.Rule{
			withP{},
		},
	}
}

// withP adds "-p" when mkdir failed on a missing intermediate
// directory and "-p" wasn't already passed.
type withP struct{}

func (withP) ID() string { return "MkdirP" }

func (r withP) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (withP) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	if !strings.Contains(cmd.LowercaseOutput(), "no such file or directory") {
		return false
	}
	for _, part := range cmd.Argv() {
		if part == "-p" {
			return false
		}
	}
	return true
}

func (withP) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 1 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[0], "-p")
	newParts = append(newParts, argv[1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
