// Package conda holds the correction rules for the "conda" command
// family.
package conda

import (
	"regexp"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "conda" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"conda"},
		Rules: []engine.Rule{
			unknownCommand{},
		},
	}
}

// unknownCommand corrects a misspelled conda subcommand using conda's
// own "Did you mean" suggestion.
type unknownCommand struct{}

var (
	condaWrongCommandRE   = regexp.MustCompile(`(?i)no command 'conda (.+)'`)
	condaCorrectCommandRE = regexp.MustCompile(`(?i)did you mean 'conda (.+)'`)
)

func (unknownCommand) ID() string { return "CondaUnknownCommand" }

func (r unknownCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unknownCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return condaWrongCommandRE.MatchString(out) && condaCorrectCommandRE.MatchString(out)
}

func (unknownCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	out := cmd.LowercaseOutput()

	wm := condaWrongCommandRE.FindStringSubmatch(out)
	if wm == nil {
		return nil
	}
	wrongCommand := wm[1]

	cm := condaCorrectCommandRE.FindStringSubmatch(out)
	if cm == nil {
		return nil
	}
	correctCommand := cm[1]

	corrections, ok := engine.NewCommandsFromSuggestions([]string{correctCommand}, cmd.Argv(), wrongCommand)
	if !ok {
		return nil
	}
	return corrections
}
