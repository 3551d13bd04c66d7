package cd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/shellfix/engine"
)

func withTempDirs(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", d, err)
		}
	}
	return root
}

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

func contains(haystack []string, want string) bool {
	for _, s := range haystack {
		if s == want {
			return true
		}
	}
	return false
}

func TestCdCorrectionRelative(t *testing.T) {
	root := withTempDirs(t,
		filepath.Join("apples", "bananas", "oranges", "mangos"),
		filepath.Join("apples", "dir2", "dir3", "dir4"),
		"acrobat",
	)
	cmd := engine.NewCommand("cd aples/banannas/oranges/mans",
		"cd: no such file or directory: aples",
		engine.ExitCode(1)).WithWorkingDir(root)

	got := runGroup(cmd, engine.NewSessionMetadata())
	want := "cd " + filepath.Join("apples", "bananas", "oranges", "mangos")
	if !contains(got, want) {
		t.Fatalf("got %v, want to contain %q", got, want)
	}
}

func TestCdCorrectionWithRemoteSessionIsEmpty(t *testing.T) {
	root := withTempDirs(t, filepath.Join("apples", "bananas", "oranges", "mangos"))
	cmd := engine.NewCommand("cd aples/banannas/oranges/mans",
		"cd: no such file or directory: aples",
		engine.ExitCode(1)).WithWorkingDir(root)

	session := engine.NewSessionMetadata().SetSessionType(engine.Remote)
	got := runGroup(cmd, session)
	if len(got) != 0 {
		t.Fatalf("expected no corrections for a remote session, got %v", got)
	}
}

func TestCdMkdirBashAndZsh(t *testing.T) {
	cmd := engine.NewCommand("cd app", "cd: no such file or directory: app", engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if !contains(got, "mkdir -p app && cd app") {
		t.Fatalf("got %v", got)
	}
}

func TestCdMkdirFish(t *testing.T) {
	cmd := engine.NewCommand("cd app", "cd: The directory 'app' does not exist", engine.ExitCode(1))
	got := runGroup(cmd, engine.NewSessionMetadata())
	if !contains(got, "mkdir -p app && cd app") {
		t.Fatalf("got %v", got)
	}
}

func TestCdMkdirWithRemoteSessionIsEmpty(t *testing.T) {
	cmd := engine.NewCommand("cd app", "cd: no such file or directory: app", engine.ExitCode(1))
	session := engine.NewSessionMetadata().SetSessionType(engine.Remote)
	got := runGroup(cmd, session)
	if len(got) != 0 {
		t.Fatalf("expected no corrections for a remote session, got %v", got)
	}
}
