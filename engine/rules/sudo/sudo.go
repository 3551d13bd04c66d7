// Package sudo holds the correction rules for the "sudo" command
// itself (as opposed to the generic rule that adds a missing sudo).
package sudo

import (
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "sudo" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"sudo"},
		Rules: []engine.Rule{
			unsudo{},
		},
	}
}

// unsudo strips a leading "sudo" when the target refuses to run as
// root at all.
type unsudo struct{}

func (unsudo) ID() string { return "Unsudo" }

func (r unsudo) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unsudo) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "you cannot perform this operation as root")
}

func (unsudo) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 2 {
		return nil
	}
	return []engine.Correction{engine.PartsCorrection(argv[1:])}
}
