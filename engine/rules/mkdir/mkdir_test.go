package mkdir

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

func TestMkdirP(t *testing.T) {
	cmd := engine.NewCommand("mkdir foo/bar", "mkdir: foo: No such file or directory", engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "mkdir -p foo/bar" {
		t.Fatalf("got %v", got)
	}
}

func TestMkdirPFlagAlreadyPresent(t *testing.T) {
	cmd := engine.NewCommand("mkdir -p foo/bar", "mkdir: foo: No such file or directory", engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 0 {
		t.Fatalf("got %v, want no corrections", got)
	}
}
