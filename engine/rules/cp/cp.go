// Package cp holds the correction rules for the "cp" command family.
package cp

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "cp" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"cp"},
		Rules: []engine.Rule{
			createDestination{},
			directory{},
		},
	}
}

// createDestination creates the missing destination directory before
// retrying the copy.
type createDestination struct{}

var cpCreateDestinationRE = regexp.MustCompile(`(?i)directory (.+) does not exist`)

func (createDestination) ID() string { return "CpCreateDestination" }

func (r createDestination) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (createDestination) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return cpCreateDestinationRE.MatchString(cmd.LowercaseOutput())
}

func (createDestination) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := cpCreateDestinationRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	dirname := m[1]
	return []engine.Correction{engine.AndCommand([]string{"mkdir", "-p", dirname}, cmd.Input())}
}

// directory adds "-a" when cp refused to copy a directory as a plain
// file.
type directory struct{}

func (directory) ID() string { return "CpDirectory" }

func (r directory) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (directory) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return strings.Contains(out, "omitting directory") || strings.Contains(out, "is a directory")
}

func (directory) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 1 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[0], "-a")
	newParts = append(newParts, argv[1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
