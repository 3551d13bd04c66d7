// Package corrector aggregates every rule family into a single
// registry and dispatches a command against it, producing ranked
// corrections.
package corrector

import (
	"sync"

	"github.com/diillson/shellfix/engine"
	"github.com/diillson/shellfix/engine/rules/brew"
	"github.com/diillson/shellfix/engine/rules/cargo"
	"github.com/diillson/shellfix/engine/rules/cat"
	"github.com/diillson/shellfix/engine/rules/cd"
	"github.com/diillson/shellfix/engine/rules/conda"
	"github.com/diillson/shellfix/engine/rules/cp"
	"github.com/diillson/shellfix/engine/rules/docker"
	"github.com/diillson/shellfix/engine/rules/generic"
	"github.com/diillson/shellfix/engine/rules/git"
	"github.com/diillson/shellfix/engine/rules/grep"
	"github.com/diillson/shellfix/engine/rules/java"
	"github.com/diillson/shellfix/engine/rules/ls"
	"github.com/diillson/shellfix/engine/rules/mkdir"
	"github.com/diillson/shellfix/engine/rules/npm"
	"github.com/diillson/shellfix/engine/rules/open"
	"github.com/diillson/shellfix/engine/rules/pip"
	"github.com/diillson/shellfix/engine/rules/python"
	"github.com/diillson/shellfix/engine/rules/rails"
	"github.com/diillson/shellfix/engine/rules/sed"
	"github.com/diillson/shellfix/engine/rules/sudo"
	"github.com/diillson/shellfix/engine/rules/touch"
	"github.com/diillson/shellfix/engine/rules/yarn"
)

var (
	registryOnce sync.Once
	byCommand    map[string][]engine.Rule
	allGroups    []engine.CommandGroup
	genericRules []engine.Rule
)

// buildRegistry assembles the one-way fan-in from every rule-family
// package's Group() constructor into the command-name lookup. Runs
// exactly once; the result is immutable thereafter.
func buildRegistry() {
	allGroups = []engine.CommandGroup{
		brew.Group(),
		cargo.Group(),
		cat.Group(),
		cd.Group(),
		conda.Group(),
		cp.Group(),
		docker.Group(),
		git.Group(),
		grep.Group(),
		java.Group(),
		ls.Group(),
		mkdir.Group(),
		npm.Group(),
		open.Group(),
		pip.Group(),
		python.Group(),
		rails.Group(),
		sed.Group(),
		sudo.Group(),
		touch.Group(),
		yarn.Group(),
	}

	byCommand = make(map[string][]engine.Rule)
	for _, group := range allGroups {
		for _, name := range group.CommandNames {
			byCommand[name] = group.Rules
		}
	}

	genericRules = generic.Rules()
}

// rulesFor returns the rules registered for commandName followed by
// the generic rules, preserving declaration order within each.
func rulesFor(commandName string) []engine.Rule {
	registryOnce.Do(buildRegistry)

	specific := byCommand[commandName]
	out := make([]engine.Rule, 0, len(specific)+len(genericRules))
	out = append(out, specific...)
	out = append(out, genericRules...)
	return out
}

// RuleCount returns the total number of distinct rules registered
// across every command group and the generic list.
func RuleCount() int {
	registryOnce.Do(buildRegistry)

	total := len(genericRules)
	for _, group := range allGroups {
		total += len(group.Rules)
	}
	return total
}
