// Package python holds the correction rules for the "python"/"python3"
// commands.
package python

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering python invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"python", "python3"},
		Rules: []engine.Rule{
			execute{},
			moduleError{},
		},
	}
}

var executeRE = regexp.MustCompile(`(?i)can't open file '(.+)'`)

// execute appends a missing ".py" extension, provided the resulting
// filename actually exists.
type execute struct{}

func (execute) ID() string { return "PythonExecute" }

func (r execute) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (execute) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	matches := executeRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return false
	}
	return !strings.HasSuffix(matches[1], ".py")
}

func (execute) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := executeRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	capturedFilename := matches[1]

	argv := cmd.Argv()
	pos := -1
	var wrongFilename string
	for i, part := range argv {
		if strings.HasSuffix(capturedFilename, part) {
			pos = i
			wrongFilename = part
			break
		}
	}
	if pos == -1 {
		return nil
	}
	newFilename := wrongFilename + ".py"

	workingDir, ok := cmd.WorkingDir()
	if !ok || !engine.IsFile(newFilename, workingDir) {
		return nil
	}

	newCommand := append([]string(nil), argv...)
	newCommand[pos] = newFilename
	return []engine.Correction{engine.PartsCorrection(newCommand)}
}

var moduleErrorRE = regexp.MustCompile(`(?i)modulenotfounderror: no module named '(.+)'`)

// moduleError suggests "pip install"-ing a missing module.
type moduleError struct{}

func (moduleError) ID() string { return "PythonModuleError" }

func (r moduleError) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (moduleError) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return moduleErrorRE.MatchString(cmd.LowercaseOutput())
}

func (moduleError) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := moduleErrorRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	moduleName := matches[1]
	return []engine.Correction{engine.AndCommand([]string{"pip", "install", moduleName}, cmd.Input())}
}
