package brew

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

func TestBrewInstall(t *testing.T) {
	cmd := engine.NewCommand("brew install crome", `Warning: No available formula with the name "crome". Did you mean rome, croc or chroma?
==> Searching for similarly named formulae...
These similarly named formulae were found:
rome                                 croc                                 chroma
drome
To install one of them, run (for example):
  brew install rome
==> Searching for a previously deleted formula (in the last month)...
Error: No previously deleted formula found.`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	want := []string{"brew install rome", "brew install croc", "brew install chroma", "brew install drome"}
	assertEqual(t, got, want)
}

func TestBrewLink(t *testing.T) {
	cmd := engine.NewCommand("brew link kubernetes-cli", `To force the link and overwrite all conflicting files:
  brew link --overwrite kubernetes-cli

To list all files that would be deleted:
  brew link --overwrite --dry-run kubernetes-cli`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"brew link --overwrite --dry-run kubernetes-cli"})
}

func TestBrewReinstall(t *testing.T) {
	cmd := engine.NewCommand("brew install jq", `Warning: jq 1.6 is already installed and up-to-date.
To reinstall 1.6, run:
  brew reinstall jq`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"brew reinstall jq"})
}

func TestBrewUninstall(t *testing.T) {
	cmd := engine.NewCommand("brew rm jq", "brew uninstall --force", engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"brew rm --force jq"})
}

func TestBrewUnknownCommand(t *testing.T) {
	cmd := engine.NewCommand("brew instll jq", "Error: Unknown command: instll", engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"brew install jq"})
}

func TestBrewUpdateUpgrade(t *testing.T) {
	cmd := engine.NewCommand("brew update jq", `Error: This command updates brew itself, and does not take formula names.
Use 'brew upgrade jq' instead.`, engine.ExitCode(1))

	got := runGroup(cmd, engine.NewSessionMetadata())
	assertEqual(t, got, []string{"brew upgrade jq"})
}
