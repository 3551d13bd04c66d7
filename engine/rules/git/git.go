// Package git holds the correction rules for the "git" command family.
package git

import (
	"regexp"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Group returns the command group covering "git" invocations, in the
// order they are tried.
func Group() engine.CommandGroup {
	return engine.CommandGroup{
		CommandNames: []string{"git"},
		Rules: []engine.Rule{
			commandNotFound{},
			mainMaster{},
			checkout{},
			pushSetUpstream{},
			pushForce{},
			stash{},
			add{},
			checkoutExists{},
			twoDashes{},
			bisect{},
			cloneRepeated{},
			stashUsage{},
		},
	}
}

// commandNotFound corrects a misspelled "git <verb>" based on git's own
// "did you mean" / "most similar command(s)" suggestions.
type commandNotFound struct{}

var (
	notGitCommandRE = regexp.MustCompile(`(?i)git: '([^']*)' is not a git command`)
	mostSimilarRE   = regexp.MustCompile(`(?is)the most similar command[s]? (?:is|are)(.*)`)
	didYouMeanRE    = regexp.MustCompile(`(?is)did you mean(.*)`)
)

func (commandNotFound) ID() string { return "GitCommandNotFound" }

func (r commandNotFound) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (commandNotFound) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return notGitCommandRE.MatchString(out) && (mostSimilarRE.MatchString(out) || didYouMeanRE.MatchString(out))
}

func (commandNotFound) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	out := cmd.LowercaseOutput()
	m := notGitCommandRE.FindStringSubmatch(out)
	if m == nil {
		return nil
	}
	incorrect := m[1]

	var suggestionBlock string
	if sm := mostSimilarRE.FindStringSubmatch(out); sm != nil {
		suggestionBlock = sm[1]
	} else if dm := didYouMeanRE.FindStringSubmatch(out); dm != nil {
		suggestionBlock = dm[1]
	} else {
		return nil
	}

	var suggestions []string
	for _, line := range strings.Split(suggestionBlock, "\n") {
		suggestions = append(suggestions, line)
	}

	corrections, ok := engine.NewCommandsFromSuggestions(suggestions, cmd.Argv(), incorrect)
	if !ok {
		return nil
	}
	return corrections
}

// mainMaster suggests checking out "master" when "main" doesn't exist
// (and vice versa).
type mainMaster struct{}

var mainMasterRE = regexp.MustCompile(`(?i)error: pathspec '(main|master)' did not match any file`)

func (mainMaster) ID() string { return "GitMainMaster" }

func (r mainMaster) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (mainMaster) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return containsArg(cmd.Argv(), "checkout") && mainMasterRE.MatchString(cmd.LowercaseOutput())
}

func (mainMaster) Generate(cmd engine.Command, session engine.SessionMetadata) []engine.Correction {
	m := mainMasterRE.FindStringSubmatch(cmd.LowercaseOutput())
	if m == nil {
		return nil
	}
	wrongBranch := m[1]

	masterExists := session.HasGitBranch("master")
	mainExists := session.HasGitBranch("main")

	var target string
	switch {
	case wrongBranch == "main" && masterExists:
		target = "master"
	case wrongBranch == "master" && mainExists:
		target = "main"
	default:
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{target}, cmd.Argv(), wrongBranch)
	if !ok {
		return nil
	}
	return corrections
}

// checkout suggests the closest known branch name, and always offers
// creating the branch with "-b" as a fallback.
type checkout struct{}

var checkoutRE = regexp.MustCompile(`(?i)error: pathspec '([^']*)' did not match any file`)

func (checkout) ID() string { return "GitCheckout" }

func (r checkout) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (checkout) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return containsArg(cmd.Argv(), "checkout") && checkoutRE.MatchString(cmd.LowercaseOutput())
}

func (checkout) Generate(cmd engine.Command, session engine.SessionMetadata) []engine.Correction {
	m := checkoutRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	wrongBranch := m[1]

	var corrections []engine.Correction

	branchNames := session.GitBranches()
	if closest, ok := engine.Closest(wrongBranch, branchNames); ok {
		if suggested, ok := engine.NewCommandsFromSuggestions([]string{closest}, cmd.Argv(), wrongBranch); ok {
			corrections = append(corrections, suggested...)
		}
	}

	argv := append([]string{}, cmd.Argv()...)
	pos := indexOf(argv, "checkout")
	if pos < 0 {
		return corrections
	}
	withFlag := make([]string, 0, len(argv)+1)
	withFlag = append(withFlag, argv[:pos+1]...)
	withFlag = append(withFlag, "-b")
	withFlag = append(withFlag, argv[pos+1:]...)
	corrections = append(corrections, engine.PartsCorrection(withFlag))

	return corrections
}

// pushSetUpstream applies the "--set-upstream <remote> <branch>"
// invocation git itself printed, preserving any other flags the user
// passed (minus a redundant --set-upstream/-u).
type pushSetUpstream struct{}

const (
	setUpstreamLong  = "--set-upstream"
	setUpstreamShort = "-u"
)

var pushSetUpstreamRE = regexp.MustCompile(`git push --set-upstream (\S+) (\S+)`)

func (pushSetUpstream) ID() string { return "GitPushSetUpstream" }

func (r pushSetUpstream) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (pushSetUpstream) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return containsArg(cmd.Argv(), "push") && pushSetUpstreamRE.MatchString(cmd.Output())
}

func (pushSetUpstream) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := pushSetUpstreamRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	remote, branch := m[1], m[2]

	newParts := []string{"git", "push", setUpstreamLong, remote, branch}

	argv := cmd.Argv()
	for i := 0; i < len(argv); i++ {
		part := argv[i]
		if !strings.HasPrefix(part, "-") {
			continue
		}
		if part == setUpstreamLong {
			i++
			continue
		}
		if part != setUpstreamShort {
			newParts = append(newParts, part)
		}
	}

	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// pushForce adds "--force-with-lease" when a push was rejected because
// the remote branch has diverged.
type pushForce struct{}

func (pushForce) ID() string { return "GitPushForce" }

func (r pushForce) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (pushForce) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	out := cmd.LowercaseOutput()
	return containsArg(cmd.Argv(), "push") &&
		strings.Contains(out, "! [rejected]") &&
		strings.Contains(out, "failed to push some refs") &&
		strings.Contains(out, "updates were rejected because the tip of your current branch is behind")
}

func (pushForce) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := append([]string{}, cmd.Argv()...)
	pos := indexOf(argv, "push")
	if pos < 0 {
		return nil
	}
	newParts := make([]string, 0, len(argv)+1)
	newParts = append(newParts, argv[:pos+1]...)
	newParts = append(newParts, "--force-with-lease")
	newParts = append(newParts, argv[pos+1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// stash prefixes the original command with "git stash" when git refuses
// to proceed over local changes.
type stash struct{}

func (stash) ID() string { return "GitStash" }

func (r stash) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (stash) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.Contains(cmd.LowercaseOutput(), "or stash them")
}

func (stash) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	return []engine.Correction{engine.AndCommand([]string{"git", "stash"}, cmd.Input())}
}

// add corrects a "git add" of a misspelled filename.
type add struct{}

var gitAddRE = regexp.MustCompile(`pathspec '(.+)' did not match any file`)

func (add) ID() string { return "GitAdd" }

func (r add) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (add) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return len(argv) > 1 && argv[1] == "add" && gitAddRE.MatchString(cmd.LowercaseOutput())
}

func (add) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := gitAddRE.FindStringSubmatch(cmd.LowercaseOutput())
	if m == nil {
		return nil
	}
	wrongFilename := m[1]

	workingDir, ok := cmd.WorkingDir()
	if !ok {
		return nil
	}
	corrected, ok := engine.CorrectPath(wrongFilename, workingDir, engine.Exists)
	if !ok {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{corrected}, cmd.Argv(), wrongFilename)
	if !ok {
		return nil
	}
	return corrections
}

// checkoutExists drops a redundant "-b" when the target branch already
// exists.
type checkoutExists struct{}

func (checkoutExists) ID() string { return "GitCheckoutExists" }

func (r checkoutExists) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (checkoutExists) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return containsArg(argv, "checkout") && containsArg(argv, "-b")
}

func (checkoutExists) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := indexOf(argv, "-b")
	if pos < 0 {
		return nil
	}
	newParts := make([]string, 0, len(argv)-1)
	newParts = append(newParts, argv[:pos]...)
	newParts = append(newParts, argv[pos+1:]...)
	return []engine.Correction{engine.PartsCorrection(newParts)}
}

// twoDashes corrects a long flag typed with a single dash.
type twoDashes struct{}

var twoDashesRE = regexp.MustCompile("(?i)did you mean `(.+)` ?(with two dashes)?")

func (twoDashes) ID() string { return "GitTwoDashes" }

func (r twoDashes) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (twoDashes) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return twoDashesRE.MatchString(cmd.LowercaseOutput())
}

func (twoDashes) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := twoDashesRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	fix := m[1]

	var toReplace string
	for _, part := range cmd.Argv() {
		if strings.HasSuffix(fix, part) {
			toReplace = part
			break
		}
	}
	if toReplace == "" {
		return nil
	}

	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), toReplace)
	if !ok {
		return nil
	}
	return corrections
}

// bisect corrects a misspelled "git bisect" subcommand.
type bisect struct{}

var gitBisectCommands = []string{
	"help", "start", "bad", "good", "new", "old", "terms", "skip",
	"next", "reset", "visualize", "view", "replay", "log", "run",
}

func (bisect) ID() string { return "GitBisect" }

func (r bisect) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (bisect) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return len(argv) > 1 && argv[1] == "bisect" && strings.Contains(cmd.LowercaseOutput(), "usage: git bisect")
}

func (bisect) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	argv := cmd.Argv()
	pos := indexOf(argv, "bisect")
	if pos < 0 || pos+1 >= len(argv) {
		return nil
	}
	broken := argv[pos+1]

	fix, ok := engine.Closest(broken, gitBisectCommands)
	if !ok {
		return nil
	}
	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, argv, broken)
	if !ok {
		return nil
	}
	return corrections
}

// cloneRepeated removes a duplicated "git clone" prefix, as happens when
// a whole command line (instead of just the remote) is pasted in.
type cloneRepeated struct{}

func (cloneRepeated) ID() string { return "GitCloneRepeated" }

func (r cloneRepeated) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (cloneRepeated) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	return strings.HasPrefix(cmd.Input(), "git clone git clone")
}

func (cloneRepeated) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	rest := strings.TrimPrefix(cmd.Input(), "git clone")
	return []engine.Correction{engine.CommandCorrection(rest)}
}

// stashUsage corrects a misspelled "git stash" subcommand.
type stashUsage struct{}

var gitStashUsageRE = regexp.MustCompile(`(?i)subcommand wasn't specified; 'push' can't be assumed due to unexpected token '(.+)'`)

var gitStashSubcommands = []string{
	"list", "show", "drop", "pop", "apply", "branch", "push", "clear", "create", "store",
}

func (stashUsage) ID() string { return "GitStashUsage" }

func (r stashUsage) ShouldBeConsideredByDefault(cmd engine.Command, session engine.SessionMetadata) bool {
	return engine.DefaultConsideration(cmd, session)
}

func (stashUsage) Matches(cmd engine.Command, _ engine.SessionMetadata) bool {
	argv := cmd.Argv()
	return len(argv) > 1 && argv[1] == "stash" && gitStashUsageRE.MatchString(cmd.LowercaseOutput())
}

func (stashUsage) Generate(cmd engine.Command, _ engine.SessionMetadata) []engine.Correction {
	m := gitStashUsageRE.FindStringSubmatch(cmd.Output())
	if m == nil {
		return nil
	}
	wrongSubcommand := m[1]

	fix, ok := engine.Closest(wrongSubcommand, gitStashSubcommands)
	if !ok {
		return nil
	}
	corrections, ok := engine.NewCommandsFromSuggestions([]string{fix}, cmd.Argv(), wrongSubcommand)
	if !ok {
		return nil
	}
	return corrections
}

func containsArg(argv []string, target string) bool {
	return indexOf(argv, target) >= 0
}

func indexOf(argv []string, target string) int {
	for i, part := range argv {
		if part == target {
			return i
		}
	}
	return -1
}
