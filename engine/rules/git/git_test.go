package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/shellfix/engine"
)

func render(t *testing.T, corrections []engine.Correction) []string {
	t.Helper()
	out := make([]string, len(corrections))
	for i, c := range corrections {
		out[i] = c.Render(engine.Bash)
	}
	return out
}

func runGroup(t *testing.T, cmd engine.Command, session engine.SessionMetadata) []string {
	t.Helper()
	var all []string
	for _, rule := range Group().Rules {
		if !rule.Matches(cmd, session) {
			continue
		}
		all = append(all, render(t, rule.Generate(cmd, session))...)
	}
	return all
}

func TestGitCommandNotFoundSingleSuggestion(t *testing.T) {
	cmd := engine.NewCommand("git psuh --force-with-lease", `git: 'psuh' is not a git command. See 'git --help'.

The most similar command is
	push
`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	want := []string{"git push --force-with-lease"}
	assertEqual(t, got, want)
}

func TestGitCommandNotFoundMultipleSuggestions(t *testing.T) {
	cmd := engine.NewCommand("git st", `git: 'st' is not a git command. See 'git --help'.

The most similar commands are
	status
	reset
	s
	stage
	stash
`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	want := []string{"git status", "git reset", "git s", "git stage", "git stash"}
	assertEqual(t, got, want)
}

func TestGitCommandNotFoundDidYouMean(t *testing.T) {
	cmd := engine.NewCommand("git st", `git: 'st' is not a git command. See 'git --help'.

Did you mean
	status
	reset
	s
	stage
	stash
`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	want := []string{"git status", "git reset", "git s", "git stage", "git stash"}
	assertEqual(t, got, want)
}

func TestGitMainMasterSuggestsMaster(t *testing.T) {
	cmd := engine.NewCommand("git checkout master",
		"error: pathspec 'master' did not match any file(s) known to git",
		engine.ExitCode(1))
	session := engine.NewSessionMetadata().SetGitBranches([]string{"main"})

	got := runGroup(t, cmd, session)
	assertContains(t, got, "git checkout main")
}

func TestGitMainMasterSuggestsMain(t *testing.T) {
	cmd := engine.NewCommand("git checkout main",
		"error: pathspec 'main' did not match any file(s) known to git",
		engine.ExitCode(1))
	session := engine.NewSessionMetadata().SetGitBranches([]string{"master"})

	got := runGroup(t, cmd, session)
	assertContains(t, got, "git checkout master")
}

func TestGitCheckoutWithSimilarBranch(t *testing.T) {
	cmd := engine.NewCommand("git checkout mster",
		"error: pathspec 'mster' did not match any file(s) known to git",
		engine.ExitCode(1))
	session := engine.NewSessionMetadata().SetGitBranches([]string{"master", "main", "develop"})

	got := runGroup(t, cmd, session)
	assertContains(t, got, "git checkout master")
	assertContains(t, got, "git checkout -b mster")
}

func TestGitCheckoutWithNewBranch(t *testing.T) {
	cmd := engine.NewCommand("git checkout some-new-branch",
		"error: pathspec 'some-new-branch' did not match any file(s) known to git",
		engine.ExitCode(1))
	session := engine.NewSessionMetadata().SetGitBranches([]string{"master", "main", "develop"})

	got := runGroup(t, cmd, session)
	assertEqual(t, got, []string{"git checkout -b some-new-branch"})
}

func TestGitPushSetUpstream(t *testing.T) {
	cmd := engine.NewCommand("git push", `fatal: The current branch random has no upstream branch.
To push the current branch and set the remote as upstream, use

    git push --set-upstream origin random
`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertContains(t, got, "git push --set-upstream origin random")
}

func TestGitPushSetUpstreamPreservesOtherFlags(t *testing.T) {
	cmd := engine.NewCommand("git push --force-with-lease -u", `fatal: The current branch random has no upstream branch.
To push the current branch and set the remote as upstream, use

    git push --set-upstream origin random
`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertContains(t, got, "git push --set-upstream origin random --force-with-lease")
}

func TestGitPushForce(t *testing.T) {
	cmd := engine.NewCommand("git push some-other-arg", `To github.com:org/repo.git
 ! [rejected]        branch/name -> branch/name (non-fast-forward)
error: failed to push some refs to 'github.com:org/repo.git'
hint: Updates were rejected because the tip of your current branch is behind
hint: its remote counterpart.`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git push --force-with-lease some-other-arg"})
}

func TestGitStash(t *testing.T) {
	cmd := engine.NewCommand("git checkout master",
		`error: Your local changes to the following files would be overwritten by checkout:
foo/bar.rs
Please commit your changes or stash them before you switch branches.
Aborting`, engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git stash && git checkout master"})
}

func TestGitAdd(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "dir"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if f, err := os.Create(filepath.Join(root, "dir", "random.rs")); err != nil {
		t.Fatalf("Create: %v", err)
	} else {
		f.Close()
	}

	cmd := engine.NewCommand("git add -- dir/randm.rs",
		"fatal: pathspec 'dir/randm.rs' did not match any files",
		engine.ExitCode(1)).WithWorkingDir(root)

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git add -- dir/random.rs"})
}

func TestGitCheckoutExists(t *testing.T) {
	cmd := engine.NewCommand("git checkout -b master",
		"fatal: a branch named 'main' already exists",
		engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertContains(t, got, "git checkout master")
}

func TestGitTwoDashes(t *testing.T) {
	cmd := engine.NewCommand("git commit -amend",
		"error: did you mean `--amend` (with two dashes)?",
		engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git commit --amend"})
}

func TestGitBisect(t *testing.T) {
	cmd := engine.NewCommand("git bisect strt",
		"usage: git bisect [help|start|bad|good|new|old|terms|skip|next|reset|visualize|view|replay|log|run]",
		engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git bisect start"})
}

func TestGitCloneRepeated(t *testing.T) {
	cmd := engine.NewCommand(
		"git clone git clone git@github.com:Homebrew/brew.git",
		`fatal: Too many arguments
usage: git clone [<options>] [--] <repo> [<dir>]`,
		engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git clone git@github.com:Homebrew/brew.git"})
}

func TestGitStashUsage(t *testing.T) {
	cmd := engine.NewCommand("git stash aply",
		"fatal: subcommand wasn't specified; 'push' can't be assumed due to unexpected token 'aply'",
		engine.ExitCode(1))

	got := runGroup(t, cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"git stash apply"})
}

func assertEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func assertContains(t *testing.T, haystack []string, want string) {
	t.Helper()
	for _, s := range haystack {
		if s == want {
			return
		}
	}
	t.Fatalf("%v does not contain %q", haystack, want)
}
