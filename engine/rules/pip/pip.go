// Package pip holds the correction rules for the "pip"/"pip2"/"pip3"
// commands.
package pip

import (
	"regexp"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering pip invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"pip", "pip2", "pip3"},
		Rules: []engine.Rule{
			unknownCommand{},
		},
	}
}

var (
	wrongCommandRE   = regexp.MustCompile(`(?i)unknown command "(.+?)"`)
	correctCommandRE = regexp.MustCompile(`(?i)maybe you meant "(.+)"`)
)

// unknownCommand corrects a misspelled pip command using pip's own
// "maybe you meant" suggestion.
type unknownCommand struct{}

func (unknownCommand) ID() string { return "PipUnknownCommand" }

func (r unknownCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unknownCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return wrongCommandRE.MatchString(out) && correctCommandRE.MatchString(out)
}

func (unknownCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	out := cmd.LowercaseOutput()

	wrongMatch := wrongCommandRE.FindStringSubmatch(out)
	if wrongMatch == nil {
		return nil
	}
	correctMatch := correctCommandRE.FindStringSubmatch(out)
	if correctMatch == nil {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{correctMatch[1]}, cmd.Argv(), wrongMatch[1])
	if !ok {
		return nil
	}
	return corrections
}
