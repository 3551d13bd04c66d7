// Package cat holds the correction rules for the "cat" command family.
package cat

import (
	"regexp"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "cat" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"cat"},
		Rules: []engine.Rule{
			catDir{},
		},
	}
}

// catDir replaces "cat" with "ls" when the target is a directory.
type catDir struct{}

var catDirRE = regexp.MustCompile(`(?i)cat: (.+): is a directory`)

func (catDir) ID() string { return "CatDir" }

func (r catDir) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (catDir) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return catDirRE.MatchString(cmd.Output())
}

func (catDir) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := catDirRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	dirname := m[1]
	return []engine.Correction{engine.PartsCorrection([]string{"ls", dirname})}
}
