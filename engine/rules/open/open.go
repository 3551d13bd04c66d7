// Package open holds the correction rules for the "open" command.
package open

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "open" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"open"},
		Rules: []engine.Rule{
			doesNotExist{},
		},
	}
}

var doesNotExistRE = regexp.MustCompile(`(?i)the file (.+) does not exist`)

var badURLMarkers = []string{
	".com", ".edu", ".info", ".io", ".ly", ".me", ".net", ".org", ".se", "www.",
}

func isBadURL(input string) bool {
	hasMarker := false
	for _, m := range badURLMarkers {
		if strings.Contains(input, m) {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return false
	}
	return !strings.Contains(input, "http://") && !strings.Contains(input, "https://")
}

// doesNotExist corrects "open" given a missing file/url, either adding
// a "http://" scheme, fuzzy-correcting the path, or offering to create
// the missing file/directory.
type doesNotExist struct{}

func (doesNotExist) ID() string { return "OpenDoesNotExist" }

func (r doesNotExist) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (doesNotExist) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return doesNotExistRE.MatchString(cmd.LowercaseOutput())
}

func (doesNotExist) Generate(cmd engine.Command, session engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()

	for i, part := range argv {
		if isBadURL(part) {
			newParts := append([]string(nil), argv...)
			newParts[i] = "http://" + part
			return []engine.Correction{engine.PartsCorrection(newParts)}
		}
	}

	if !session.SessionType().IsLocal() {
		return nil
	}

	matches := doesNotExistRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	openArg := matches[1]

	workingDir, ok := cmd.WorkingDir()
	if !ok {
		return nil
	}

	if correctedPath, ok := engine.CorrectPath(openArg, workingDir, engine.Exists); ok {
		corrections, ok := engine.NewCommandsFromSuggestions([]string{correctedPath}, argv, openArg)
		if !ok {
			return nil
		}
		return corrections
	}

	return []engine.Correction{
		engine.PartsCorrection([]string{"touch", openArg}),
		engine.PartsCorrection([]string{"mkdir", openArg}),
	}
}
