// Package brew holds the correction rules for the "brew" command family.
package brew

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "brew" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"brew"},
		Rules: []engine.Rule{
			install{},
			link{},
			reinstall{},
			uninstall{},
			unknownCommand{},
			updateUpgrade{},
		},
	}
}

// install corrects a "brew install <formula>" where formula is
// misspelled, using brew's own "similarly named formulae" suggestions.
type install struct{}

var (
	wrongFormulaRE = regexp.MustCompile(`(?i)no available formula with the name "(.+)"\. did you mean (?:.+)?`)
	newFormulaeRE  = regexp.MustCompile(`(?i)these similarly named formulae were found:\n((?:.+\n)*)to install`)
)

func (install) ID() string { return "BrewInstall" }

func (r install) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (install) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return strings.Contains(cmd.Input(), "install") && wrongFormulaRE.MatchString(out) && newFormulaeRE.MatchString(out)
}

func (install) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := wrongFormulaRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	toFix := m[1]

	fm := newFormulaeRE.FindStringSubmatch(cmd.Output())
	if fm == nil {
		return nil
	}
	corrected := strings.Fields(fm[1])

	corrections, ok := engine.NewCommandsFromSuggestions(corrected, cmd.Argv(), toFix)
	if !ok {
		return nil
	}
	return corrections
}

// link inserts "--overwrite --dry-run" when brew suggests it for a
// conflicting link.
type link struct{}

func (link) ID() string { return "BrewLink" }

func (r link) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (link) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	hasLinkVerb := false
	for _, p := range argv {
		if p == "ln" || p == "link" {
			hasLinkVerb = true
			break
		}
	}
	return hasLinkVerb && strings.Contains(cmd.LowercaseOutput(), "brew link --overwrite --dry-run")
}

func (link) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := -1
	for i, p := range argv {
		if p == "ln" || p == "link" {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+2)
	newParts = append(newParts, argv[:pos+1]...)
	newParts = append(newParts, "--overwrite", "--dry-run")
	newParts = append(newParts, argv[pos+1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// reinstall swaps "install" for "reinstall" when brew reports the
// formula is already up to date.
type reinstall struct{}

func (reinstall) ID() string { return "BrewReinstall" }

func (r reinstall) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (reinstall) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return containsArg(cmd.Argv(), "install") && strings.Contains(cmd.LowercaseOutput(), "is already installed and up-to-date")
}

func (reinstall) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := append([]string{}, cmd.Argv()...)
	pos := indexOf(argv, "install")
	if pos < 0 {
		return nil
	}
	argv[pos] = "reinstall"
	return []engine.Correction{engine.PartsCorrection(argv)}
}

// uninstall adds "--force" when a plain uninstall doesn't take.
type uninstall struct{}

func (uninstall) ID() string { return "BrewUninstall" }

func (r uninstall) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (uninstall) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	var hasVerb bool
	for _, p := range argv {
		if p == "uninstall" || p == "rm" || p == "remove" {
			hasVerb = true
			break
		}
	}
	return hasVerb && strings.Contains(cmd.LowercaseOutput(), "brew uninstall --force")
}

func (uninstall) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := -1
	for i, p := range argv {
		if p == "uninstall" || p == "rm" || p == "remove" {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[:pos+1]...)
	newParts = append(newParts, "--force")
	newParts = append(newParts, argv[pos+1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// unknownCommand corrects a misspelled brew subcommand.
type unknownCommand struct{}

var brewUnknownCommandRE = regexp.MustCompile(`(?i)unknown command: (.+)`)

var brewSubcommands = []string{
	"analytics", "autoremove", "casks", "cleanup", "commands", "completions",
	"config", "deps", "desc", "developer", "docs", "doctor", "dr", "fetch",
	"formulae", "gist-logs", "home", "homepage", "info", "abv", "install",
	"leaves", "link", "ln", "list", "ls", "log", "migrate", "missing",
	"options", "outdated", "pin", "postinstall", "readall", "reinstall",
	"search", "shellenv", "tap", "tap-info", "uninstall", "remove", "rm",
	"unlink", "unpin", "untap", "update", "update-reset", "upgrade", "uses",
}

func (unknownCommand) ID() string { return "BrewUnknownCommand" }

func (r unknownCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unknownCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "unknown command")
}

func (unknownCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := brewUnknownCommandRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	toFix := m[1]

	fix, ok := engine.Closest(toFix, brewSubcommands)
	if !ok {
		return nil
	}
	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), toFix)
	if !ok {
		return nil
	}
	return corrections
}

// updateUpgrade replaces "update" with "upgrade" when a formula name was
// passed (brew update never takes one).
type updateUpgrade struct{}

func (updateUpgrade) ID() string { return "BrewUpdateUpgrade" }

func (r updateUpgrade) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (updateUpgrade) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return containsArg(cmd.Argv(), "update") && strings.Contains(cmd.LowercaseOutput(), "this command updates brew itself")
}

func (updateUpgrade) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	corrections, ok := engine.NewCommandsFromSuggestions([]string{"upgrade"}, cmd.Argv(), "update")
	if !ok {
		return nil
	}
	return corrections
}

func containsArg(argv []string, target string) bool {
	return indexOf(argv, target) >= 0
}

func indexOf(argv []string, target string) int {
	for i, p := range argv {
		if p == target {
			return i
		}
	}
	return -1
}
