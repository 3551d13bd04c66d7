package ls

import (
	"testing"

	"github.com/diillson/shellfix/engine"
)

func runGroup(cmd engine.Command, session engine.SessionMetadata) []string {
	var out []string
	for _, rule := range Group().Rules {
		if !rule.ShouldBeConsideredByDefault(cmd, session) {
			continue
		}
		if !rule.Matches(cmd, session) {
			continue
		}
		for _, c := range rule.Generate(cmd, session) {
			out = append(out, c.Render(engine.Bash))
		}
	}
	return out
}

func TestLsAll(t *testing.T) {
	cmd := engine.NewCommand("ls -G", "", engine.ExitCode(0))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "ls -a -G" {
		t.Fatalf("got %v", got)
	}
}

func TestLsAllWithHiddenDirsAlready(t *testing.T) {
	cmd := engine.NewCommand("ls -A -G", "", engine.ExitCode(0))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestLsAllWithComplicatedFlags(t *testing.T) {
	cmd := engine.NewCommand("ls -GA", "", engine.ExitCode(0))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
