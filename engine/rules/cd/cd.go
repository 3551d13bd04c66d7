// Package cd holds the correction rules for the "cd" builtin.
package cd

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "cd" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"cd"},
		Rules: []engine.Rule{
			correction{},
			mkdir{},
		},
	}
}

var cdTargetRE = regexp.MustCompile(`cd (.+)`)

// matchesCdDoesntExist reports whether the output looks like a cd
// failure due to a missing directory. cd corrections are only offered
// for local sessions: we can't probe a remote filesystem.
func matchesCdDoesntExist(cmd engine.Command, session engine.SessionMetadata) bool {
	if !session.SessionType().IsLocal() {
		return false
	}
	out := cmd.LowercaseOutput()
	return strings.Contains(out, "does not exist") || strings.Contains(out, "no such file or directory")
}

// correction substitutes the closest existing directory at each path
// level that doesn't exist as typed.
type correction struct{}

func (correction) ID() string { return "CdCorrection" }

func (r correction) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (correction) Matches(cmd engine.Command, session engine.SessionMetadata) bool {
	return matchesCdDoesntExist(cmd, session)
}

func (correction) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := cdTargetRE.FindStringSubmatch(cmd.Input())
	if m == nil {
		return nil
	}
	wrongDirname := m[1]

	workingDir, ok := cmd.WorkingDir()
	if !ok {
		return nil
	}
	corrected, ok := engine.CorrectPath(wrongDirname, workingDir, engine.IsDir)
	if !ok {
		return nil
	}
	return []engine.Correction{engine.PartsCorrection([]string{"cd", corrected})}
}

// mkdir offers to create the missing directory before cd-ing into it.
type mkdir struct{}

func (mkdir) ID() string { return "CdMkdir" }

func (r mkdir) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (mkdir) Matches(cmd engine.Command, session engine.SessionMetadata) bool {
	return matchesCdDoesntExist(cmd, session)
}

func (mkdir) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := cdTargetRE.FindStringSubmatch(cmd.Input())
	if m == nil {
		return nil
	}
	dirname := m[1]
	return []engine.Correction{engine.AndCommand([]string{"mkdir", "-p", dirname}, cmd.Input())}
}
