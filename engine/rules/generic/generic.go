// Package generic holds correction rules that apply across command
// families rather than to one specific command name: repeated verbs,
// missing "sudo"/"chmod +x", a leading copy-pasted shell prompt, a
// typo'd top-level command, and so on.
package generic

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Rules returns every generic rule, in the order they're tried. Unlike
// a CommandGroup, these apply regardless of argv[0].
func Rules() []engine.Rule {
	return []engine.Rule{
		noCommand{},
		cdParent{},
		chmodX{},
		python{},
		repetition{},
		leadingShellPrompt{},
		sudo{},
		history{},
	}
}

// cdParent corrects "cd.." (no space), a typo the shell reports as
// command-not-found rather than routing to the cd builtin.
type cdParent struct{}

func (cdParent) ID() string { return "CdParent" }

func (r cdParent) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (cdParent) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return cmd.Input() == "cd.."
}

func (cdParent) Generate(_ engine.Command, _ engine.SessionMetadata) []engine.Correction {
	return []engine.Correction{engine.PartsCorrection([]string{"cd", ".."})}
}

// chmodX prefixes a "chmod +x" when a local script was invoked without
// the executable bit set.
type chmodX struct{}

func (chmodX) ID() string { return "ChmodX" }

func (r chmodX) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (chmodX) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := strings.ToLower(cmd.Output())
	startsWithPath := strings.HasPrefix(cmd.Input(), ".") || strings.HasPrefix(cmd.Input(), string(filepath.Separator))
	hasError := strings.Contains(out, "permission denied") || strings.Contains(out, "not an executable file")
	return startsWithPath && hasError
}

func (chmodX) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) == 0 {
		return nil
	}
	scriptName := argv[0]
	return []engine.Correction{engine.AndCommand([]string{"chmod", "+x", scriptName}, cmd.Input())}
}

// history suggests the closest command from shell history, excluding
// the command that just ran.
type history struct{}

func (history) ID() string { return "History" }

func (history) ShouldBeConsideredByDefault(_ engine.Command, _ engine.SessionMetadata) bool {
	return true
}

func (history) Matches(_ engine.Command, _ engine.SessionMetadata) bool { return true }

func (history) Generate(cmd engine.Command, session engine.SessionMetadata) []engine.Correction {
	var candidates []string
	for _, entry := range session.History() {
		if entry != cmd.Input() {
			candidates = append(candidates, entry)
		}
	}
	fix, ok := engine.Closest(cmd.Input(), candidates)
	if !ok {
		return nil
	}
	return []engine.Correction{engine.CommandCorrection(fix)}
}

// leadingShellPrompt strips a copy-pasted leading "$ " shell prompt.
type leadingShellPrompt struct{}

var leadingShellPromptRE = regexp.MustCompile(`[\s]*\$[\s]*(\S.*)`)

func (leadingShellPrompt) ID() string { return "LeadingShellPrompt" }

func (r leadingShellPrompt) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (leadingShellPrompt) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(strings.ToLower(cmd.Output()), "command not found") && leadingShellPromptRE.MatchString(cmd.Input())
}

func (leadingShellPrompt) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 2 {
		return nil
	}
	return []engine.Correction{engine.PartsCorrection(argv[1:])}
}

// noCommand corrects a typo'd top-level command name against known
// aliases/builtins/executables/functions and shell history.
type noCommand struct{}

func (noCommand) ID() string { return "NoCommand" }

func (noCommand) ShouldBeConsideredByDefault(_ engine.Command, _ engine.SessionMetadata) bool {
	return true
}

func (noCommand) Matches(cmd engine.Command, session engine.SessionMetadata) bool {
	argv := cmd.Argv()
	if len(argv) == 0 {
		return false
	}
	return cmd.ExitCode().Raw() == 127 && !session.IsTopLevelCommand(argv[0])
}

func (noCommand) Generate(cmd engine.Command, session engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) == 0 {
		return nil
	}
	toFix := argv[0]

	topLevelFix, topLevelOK := engine.Closest(toFix, session.TopLevelCommands())

	var historyCandidates []string
	for _, entry := range session.TopLevelCommandsFromHistory() {
		if entry != toFix && session.IsTopLevelCommand(entry) {
			historyCandidates = append(historyCandidates, entry)
		}
	}
	historyFix, historyOK := engine.Closest(toFix, historyCandidates)

	var suggestions []string
	if historyOK {
		suggestions = append(suggestions, historyFix)
	}
	if topLevelOK && (!historyOK || topLevelFix != historyFix) {
		suggestions = append(suggestions, topLevelFix)
	}
	if len(suggestions) == 0 {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions(suggestions, argv, toFix)
	if !ok {
		return nil
	}
	return corrections
}

// python prefixes "python" for a ".py" script invoked directly that
// the shell couldn't run (no shebang, or not executable).
type python struct{}

func (python) ID() string { return "Python" }

func (r python) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (python) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	if len(argv) == 0 || !strings.HasSuffix(argv[0], ".py") {
		return false
	}
	out := cmd.LowercaseOutput()
	return strings.Contains(out, "permission denied") || strings.Contains(out, "command not found")
}

func (python) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, "python")
	newParts = append(newParts, argv...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// repetition drops an accidentally doubled top-level command, e.g.
// "git git status".
type repetition struct{}

func (repetition) ID() string { return "Repetition" }

func (r repetition) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (repetition) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return len(argv) >= 2 && argv[0] == argv[1]
}

func (repetition) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	if len(argv) < 2 {
		return nil
	}
	return []engine.Correction{engine.PartsCorrection(argv[1:])}
}

// sudo prefixes "sudo" when the output indicates a permissions problem,
// unless the user already tried sudo.
type sudo struct{}

var sudoPatterns = []string{
	"permission denied", "eacces", "pkg: insufficient privileges",
	"you cannot perform this operation unless you are root", "non-root users cannot",
	"operation not permitted", "not super-user", "superuser privilege", "root privilege",
	"this command has to be run under the root user", "this operation requires root",
	"requested operation requires superuser privilege", "must be run as root",
	"must run as root", "must be superuser", "must be root", "need to be root",
	"need root", "needs to be run as root", "only root can",
	"you don't have access to the history db", "authentication is required",
	"edspermissionerror", "you don't have write permissions", "use `sudo`",
	"sudorequirederror", "error: insufficient privileges",
	"updatedb: can not open a temporary file",
}

func (sudo) ID() string { return "Sudo" }

func (r sudo) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (sudo) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	if len(argv) > 0 && argv[0] == "sudo" {
		return false
	}
	out := cmd.LowercaseOutput()
	for _, pattern := range sudoPatterns {
		if strings.Contains(out, pattern) {
			return true
		}
	}
	return false
}

func (sudo) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, "sudo")
	newParts = append(newParts, argv...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}
