package open

import (
	"os"
	"path/filepath"
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

func withSampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "apples", "bananas", "oranges", "mangos"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestOpenURL(t *testing.T) {
	cmd := engine.NewCommand("open github.com",
		"The file ~/github.com does not exist.\nPerhaps you meant 'http://github.com'?", engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 1 || got[0] != "open http://github.com" {
		t.Fatalf("got %v", got)
	}
}

func TestOpenCorrectingPath(t *testing.T) {
	root := withSampleTree(t)
	cmd := engine.NewCommand("open aples/banannas/oranges/mans",
		"The file aples/banannas/oranges/mans does not exist.", engine.ExitCode(1)).WithWorkingDir(root)
	got := runGroup(cmd, engine.NewSessionMetadata())
	want := "open apples/bananas/oranges/mangos"
	found := false
	for _, s := range got {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v, want to contain %q", got, want)
	}
}

func TestOpenNoFileExists(t *testing.T) {
	root := withSampleTree(t)
	cmd := engine.NewCommand("open apples/bananas/beef",
		"The file apples/bananas/beef does not exist.", engine.ExitCode(1)).WithWorkingDir(root)
	got := runGroup(cmd, engine.NewSessionMetadata())
	if len(got) != 2 || got[0] != "touch apples/bananas/beef" || got[1] != "mkdir apples/bananas/beef" {
		t.Fatalf("got %v", got)
	}
}
