// Package grep holds the correction rules for the "grep"/"egrep"
// command family.
package grep

import (
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "grep" and "egrep"
// invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"grep", "egrep"},
		Rules: []engine.Rule{
			argumentsOrder{},
			recursive{},
		},
	}
}

// argumentsOrder moves a filename argument grep mistook for a pattern
// to the end of the command.
type argumentsOrder struct{}

func (argumentsOrder) ID() string { return "GrepArgumentsOrder" }

func (r argumentsOrder) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (argumentsOrder) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "no such file or directory")
}

func (argumentsOrder) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	workingDir, ok := cmd.WorkingDir()
	if !ok {
		return nil
	}

	argv := cmd.Argv()
	filenamePos := -1
	for i, part := range argv {
		if engine.IsFile(part, workingDir) {
			filenamePos = i
			break
		}
	}
	if filenamePos < 0 {
		return nil
	}
	if filenamePos == len(argv)-1 {
		return nil
	}

	filename := argv[filenamePos]
	newParts := make([]string, 0, len(argv))
	newParts = append(newParts, argv[:filenamePos]...)
	newParts = append(newParts, argv[filenamePos+1:]...)
	newParts = append(newParts, filename)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// recursive adds "--recursive" when grep was pointed at a directory.
type recursive struct{}

func (recursive) ID() string { return "GrepRecursive" }

func (r recursive) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (recursive) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "is a directory")
}

func (recursive) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 1 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[0], "--recursive")
	newParts = append(newParts, argv[1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
