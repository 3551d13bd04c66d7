// Package docker holds the correction rules for the "docker" command
// family.
package docker

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "docker" invocations.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"docker"},
		Rules: []engine.Rule{
			imageRm{},
			noCommand{},
			login{},
		},
	}
}

// imageRm adds "--force" to an "image rm" that failed because the image
// is still referenced by a container.
type imageRm struct{}

func (imageRm) ID() string { return "DockerImageRm" }

func (r imageRm) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (imageRm) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.Input(), "image rm")
}

func (imageRm) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := -1
	for i, p := range argv {
		if p == "rm" {
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

// noCommand corrects an unknown docker subcommand (including the
// second-tier "docker compose"-style management commands).
type noCommand struct{}

var dockerNoCommandRE = regexp.MustCompile(`(?i)'(.+)' is not a docker command`)

var dockerSubcommands = []string{
	"attach", "build", "commit", "cp", "create", "diff", "events", "exec", "export", "history",
	"images", "import", "info", "inspect", "kill", "load", "login", "logout", "logs", "pause",
	"port", "ps", "pull", "push", "rename", "restart", "rm", "rmi", "run", "save", "search",
	"start", "stats", "stop", "tag", "top", "unpause", "update", "version", "wait",
	"builder", "buildx", "compose", "config", "container", "context", "extension", "image",
	"manifest", "network", "node", "plugin", "sbom", "scan", "secret", "service", "stack",
	"swarm", "system", "trust", "volume",
}

func (noCommand) ID() string { return "DockerNoCommand" }

func (r noCommand) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (noCommand) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return dockerNoCommandRE.MatchString(cmd.LowercaseOutput())
}

func (noCommand) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := dockerNoCommandRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	toFix := m[1]

	fix, ok := engine.Closest(toFix, dockerSubcommands)
	if !ok {
		return nil
	}
	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), toFix)
	if !ok {
		return nil
	}
	return corrections
}

// login prefixes a failing push/pull with "docker login".
type login struct{}

func (login) ID() string { return "DockerLogin" }

func (r login) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (login) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return strings.Contains(out, "access denied") || strings.Contains(out, "may require 'docker login'")
}

func (login) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	return []engine.Correction{engine.AndCommand([]string{"docker", "login"}, cmd.Input())}
}
