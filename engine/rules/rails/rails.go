// Package rails holds the correction rules for the "rails" command.
package rails

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "rails" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"rails"},
		Rules: []engine.Rule{
			pendingMigrations{},
		},
	}
}

var pendingMigrationsRE = regexp.MustCompile(`(?is)To resolve this issue, run:(.*)`)

// pendingMigrations suggests the "rails db:migrate" invocation rails
// itself printed when it refused to run with pending migrations.
type pendingMigrations struct{}

func (pendingMigrations) ID() string { return "RailsPendingMigrations" }

func (r pendingMigrations) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (pendingMigrations) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return pendingMigrationsRE.MatchString(cmd.LowercaseOutput())
}

func (pendingMigrations) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	matches := pendingMigrationsRE.FindStringSubmatch(cmd.Output())
	if matches == nil {
		return nil
	}
	migrationCmd := strings.TrimSpace(matches[1])
	if migrationCmd == "" {
		return nil
	}
	return []engine.Correction{engine.AndCorrection(engine.CommandCorrection(migrationCmd), engine.CommandCorrection(cmd.Input()))}
}
