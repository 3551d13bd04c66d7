// Package touch holds the correction rules for the "touch" command.
package touch

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "touch" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"touch"},
		Rules: []engine.Rule{
			missing{},
		},
	}
}

var touchRE = regexp.MustCompile(`(?i)touch: (.+):`)

// missing suggests creating the missing parent directory before
// touch'ing a file whose directory doesn't exist.
type missing struct{}

func (missing) ID() string { return "MissingTouch" }

func (r missing) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (missing) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "no such file or directory")
}

func (missing) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := touchRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	pathStr := matches[1]
	directoryPath := filepath.Dir(pathStr)
	if directoryPath == "" || directoryPath == "." {
		return nil
	}
	return []engine.Correction{engine.AndCommand([]string{"mkdir", "-p", directoryPath}, cmd.Input())}
}
