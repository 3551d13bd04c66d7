// Package npm holds the correction rules for the "npm" command.
package npm

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "npm" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"npm"},
		Rules: []engine.Rule{
			unknownCommand{},
		},
	}
}

var npmUnknownCommandRE = regexp.MustCompile(`(?i)Unknown command: "(.+)"`)

var npmSubcommands = []string{
	"access", "adduser", "audit", "bin", "bugs", "cache", "ci", "completion",
	"config", "dedupe", "deprecate", "diff", "dist-tag", "docs", "doctor",
	"edit", "exec", "explain", "explore", "find-dupes", "fund", "get", "help",
	"hook", "init", "install", "install-ci-test", "install-test", "link",
	"ll", "login", "logout", "ls", "org", "outdated", "owner", "pack",
	"ping", "pkg", "prefix", "profile", "prune", "publish", "query",
	"rebuild", "repo", "restart", "root", "run-script", "search", "set",
	"set-script", "shrinkwrap", "star", "stars", "start", "stop", "team",
	"test", "token", "uninstall", "unpublish", "unstar", "update",
	"version", "view", "whoami",
}

// unknownCommand corrects a misspelled npm subcommand.
type unknownCommand struct{}

func (unknownCommand) ID() string { return "NpmUnknownCommand" }

func (r unknownCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (unknownCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "unknown command")
}

func (unknownCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := npmUnknownCommandRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	toReplace := matches[1]

	fix, ok := engine.Closest(toReplace, npmSubcommands)
	if !ok {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), toReplace)
	if !ok {
		return nil
	}
	return corrections
}
