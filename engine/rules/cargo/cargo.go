// Package cargo holds the correction rules for the "cargo" command
// family.
package cargo

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "cargo" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"cargo"},
		Rules: []engine.Rule{
			bareCargo{},
			noCommand{},
		},
	}
}

// bareCargo corrects a bare "cargo" invocation (which exits 0) to
// "cargo build".
type bareCargo struct{}

func (bareCargo) ID() string { return "Cargo" }

func (bareCargo) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.AlwaysConsidered(cmd, session)
}

func (bareCargo) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return cmd.Input() == "cargo"
}

func (bareCargo) Generate(_ engine.Command, _ engine.SessionMetadata) []engine.Correction {
	return []engine.Correction{engine.PartsCorrection([]string{"cargo", "build"})}
}

// noCommand corrects a misspelled cargo subcommand using cargo's own
// "Did you mean" suggestion.
type noCommand struct{}

var cargoNoCommandRE = regexp.MustCompile("(?i)did you mean `([^`]*)")

func (noCommand) ID() string { return "CargoNoCommand" }

func (r noCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (noCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "no such subcommand") && cargoNoCommandRE.MatchString(cmd.Output())
}

func (noCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := cargoNoCommandRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	fix := m[1]

	argv := append([]string{}, cmd.Argv()...)
	if len(argv) < 2 {
		return nil
	}
	argv[1] = fix
	return []engine.Correction{engine.PartsCorrection(argv)}
}
