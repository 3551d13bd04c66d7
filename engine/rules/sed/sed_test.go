package sed

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

func TestSedUnterminated(t *testing.T) {
	cmd := engine.NewCommand("sed 's/e/d' file.txt",
		`sed: 1: "s/e/d": unterminated substitute in regular expression`, engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "sed s/e/d/ file.txt" {
		t.Fatalf("got %v", got)
	}
}

func TestSedTerminated(t *testing.T) {
	cmd := engine.NewCommand("sed 's/e/d/' file.txt",
		`sed: 1: "s/e/d/": unterminated substitute in regular expression`, engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestSedEscaped(t *testing.T) {
	cmd := engine.NewCommand("sed 's/e f/d' file.txt",
		`sed: 1: "s/e f/d/": unterminated substitute in regular expression`, engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "sed 's/e f/d/' file.txt" {
		t.Fatalf("got %v", got)
	}
}
