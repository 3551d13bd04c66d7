// Package ls holds the correction rules for the "ls" command.
package ls

import (
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "ls" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"ls"},
		Rules: []engine.Rule{
			all{},
		},
	}
}

// all suggests "-a" when a plain "ls" produced no output, surfacing
// hidden directories.
type all struct{}

func (all) ID() string { return "LsAll" }

func (r all) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.AlwaysConsidered(cmd, session)
}

func (all) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	for _, part := range cmd.Argv() {
		if strings.HasPrefix(part, "-") && (strings.Contains(part, "a") || strings.Contains(part, "A")) {
			return false
		}
	}
	return cmd.Output() == ""
}

func (all) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) == 0 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[0], "-a")
	newParts = append(newParts, argv[1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
