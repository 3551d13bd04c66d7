// Package yarn holds the correction rules for the "yarn" command.
package yarn

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "yarn" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"yarn"},
		Rules: []engine.Rule{
			help{},
			alias{},
			commandNotFound{},
			commandReplaced{},
		},
	}
}

var helpRE = regexp.MustCompile(`(?i)Visit (.+) (to|for)`)

// help opens the docs page yarn printed when invoked with "help".
type help struct{}

func (help) ID() string { return "YarnHelp" }

func (r help) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (help) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return len(argv) > 1 && argv[1] == "help" && helpRE.MatchString(cmd.LowercaseOutput())
}

func (help) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := helpRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	return []engine.Correction{engine.PartsCorrection([]string{"open", matches[1]})}
}

var (
	aliasWrongCommandRE = regexp.MustCompile(`(?i)Command "(.+)" not found`)
	aliasDidYouMeanRE   = regexp.MustCompile(`(?i)Did you mean "(.+)"`)
)

// alias suggests yarn's own "did you mean" correction for an unknown
// subcommand.
type alias struct{}

func (alias) ID() string { return "YarnAlias" }

func (r alias) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (alias) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "did you mean")
}

func (alias) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	wrongMatch := aliasWrongCommandRE.FindStringSubmatch(cmd.Output())
	if wrongMatch == nil {
		return nil
	}
	fixMatch := aliasDidYouMeanRE.FindStringSubmatch(cmd.Output())
	if fixMatch == nil {
		return nil
	}
	corrections, ok := engine.NewCommandsFromSuggestions([]string{fixMatch[1]}, cmd.Argv(), wrongMatch[1])
	if !ok {
		return nil
	}
	return corrections
}

var yarnCommandNotFoundRE = regexp.MustCompile(`(?i)Command "(.+)" not found`)

var yarnSubcommands = []string{
	"access", "add", "audit", "autoclean", "bin", "cache", "check", "config",
	"create", "exec", "generate-lock-entry", "generateLockEntry", "global",
	"help", "import", "info", "init", "install", "licenses", "link", "list",
	"login", "logout", "node", "outdated", "owner", "pack", "policies",
	"publish", "remove", "run", "tag", "team", "unlink", "unplug", "upgrade",
	"upgrade-interactive", "upgradeInteractive", "version", "versions",
	"why", "workspace",
}

// commandNotFound corrects an unknown yarn subcommand against the
// known subcommand list.
type commandNotFound struct{}

func (commandNotFound) ID() string { return "YarnCommandNotFound" }

func (r commandNotFound) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (commandNotFound) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return yarnCommandNotFoundRE.MatchString(cmd.Output())
}

func (commandNotFound) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := yarnCommandNotFoundRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	toReplace := matches[1]

	fix, ok := engine.Closest(toReplace, yarnSubcommands)
	if !ok {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), toReplace)
	if !ok {
		return nil
	}
	return corrections
}

var commandReplacedRE = regexp.MustCompile(`(?i)Run "(.*)" instead`)

// commandReplaced corrects an obsolete yarn command to the one yarn
// itself printed as its replacement.
type commandReplaced struct{}

func (commandReplaced) ID() string { return "YarnCommandReplaced" }

func (r commandReplaced) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (commandReplaced) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return commandReplacedRE.MatchString(cmd.Output())
}

func (commandReplaced) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := commandReplacedRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	return []engine.Correction{engine.CommandCorrection(matches[1])}
}
