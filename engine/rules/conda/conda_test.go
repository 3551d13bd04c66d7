package conda

import (
	"testing"

	"github.com/diillson/shellfix/engine"
)

func TestCondaUnknownCommand(t *testing.T) {
	cmd := engine.NewCommand("conda cln --force", `CommandNotFoundError: No command 'conda cln'.
Did you mean 'conda clean'?`, engine.ExitCode(1))

	var got []string
	for _, rule := range Group().Rules {
		if !rule.Matches(cmd, engine.NewSessionMetadata()) {
			continue
		}
		for _, c := range rule.Generate(cmd, engine.NewSessionMetadata()) {
			got = append(got, c.Render(engine.Bash))
		}
	}

	if len(got) != 1 || got[0] != "conda clean --force" {
		t.Fatalf("got %v, want [\"conda clean --force\"]", got)
	}
}
