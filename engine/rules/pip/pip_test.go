package pip

import (
	"testing"

	"github.com/diillson/shellfix/engine"
)

func runGroup(cmd engine.Command, session engine.SessionMetadata) []string {
	var out []string
	for _, rule := range Group().Rules {
		if !rule.Matches(cmd, session) {
			continue
		}
		for _, c := range rule.Generate(cmd, session) {
			out = append(out, c.Render(engine.Bash))
		}
	}
	return out
}

func TestPipUnknownCommand(t *testing.T) {
	cmd := engine.NewCommand("pip --no-input downld",
		`ERROR: unknown command "downld" - maybe you meant "download"`, engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "pip --no-input download" {
		t.Fatalf("got %v", got)
	}
}
