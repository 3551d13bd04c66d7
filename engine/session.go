package engine

// Shell identifies the interactive shell a session is running under. It
// determines only which token sequences two commands ("&&" vs "and").
type Shell int

const (
	Bash Shell = iota
	Zsh
	Fish
)

// AndToken returns the token used to sequence two commands such that
// the second runs only if the first succeeds.
func (s Shell) AndToken() string {
	if s == Fish {
		return "and"
	}
	return "&&"
}

// SessionType distinguishes a session running against the local
// filesystem from one running against a remote host the engine cannot
// safely probe.
type SessionType int

const (
	Local SessionType = iota
	Remote
)

// IsLocal reports whether filesystem-probing rules may run.
func (t SessionType) IsLocal() bool { return t == Local }

// SessionMetadata captures everything the dispatcher and rules know
// about the environment the command ran in, beyond the command itself.
// The zero value is a sensible default session: Bash, Local, nothing
// known.
type SessionMetadata struct {
	shell       Shell
	sessionType SessionType

	aliases     map[string]struct{}
	builtins    map[string]struct{}
	executables map[string]struct{}
	functions   map[string]struct{}

	history     []string
	gitBranches map[string]struct{}
}

// NewSessionMetadata returns a default session: Bash shell, Local
// session type, empty sets.
func NewSessionMetadata() SessionMetadata {
	return SessionMetadata{}
}

func (s SessionMetadata) Shell() Shell             { return s.shell }
func (s SessionMetadata) SessionType() SessionType { return s.sessionType }
func (s SessionMetadata) History() []string        { return s.history }

func (s SessionMetadata) SetShell(shell Shell) SessionMetadata {
	s.shell = shell
	return s
}

func (s SessionMetadata) SetSessionType(t SessionType) SessionMetadata {
	s.sessionType = t
	return s
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func (s SessionMetadata) SetAliases(names []string) SessionMetadata {
	s.aliases = toSet(names)
	return s
}

func (s SessionMetadata) SetBuiltins(names []string) SessionMetadata {
	s.builtins = toSet(names)
	return s
}

func (s SessionMetadata) SetExecutables(names []string) SessionMetadata {
	s.executables = toSet(names)
	return s
}

func (s SessionMetadata) SetFunctions(names []string) SessionMetadata {
	s.functions = toSet(names)
	return s
}

func (s SessionMetadata) SetHistory(history []string) SessionMetadata {
	s.history = history
	return s
}

func (s SessionMetadata) SetGitBranches(branches []string) SessionMetadata {
	s.gitBranches = toSet(branches)
	return s
}

// HasGitBranch reports whether name is a known local branch.
func (s SessionMetadata) HasGitBranch(name string) bool {
	_, ok := s.gitBranches[name]
	return ok
}

// GitBranches returns the known local branch names, in no particular
// order.
func (s SessionMetadata) GitBranches() []string {
	out := make([]string, 0, len(s.gitBranches))
	for name := range s.gitBranches {
		out = append(out, name)
	}
	return out
}

// IsTopLevelCommand reports whether name is known to the shell as an
// alias, builtin, executable, or function.
func (s SessionMetadata) IsTopLevelCommand(name string) bool {
	if _, ok := s.aliases[name]; ok {
		return true
	}
	if _, ok := s.builtins[name]; ok {
		return true
	}
	if _, ok := s.executables[name]; ok {
		return true
	}
	if _, ok := s.functions[name]; ok {
		return true
	}
	return false
}

// TopLevelCommands returns the union of aliases, builtins, executables,
// and functions, in no particular order.
func (s SessionMetadata) TopLevelCommands() []string {
	total := len(s.aliases) + len(s.builtins) + len(s.executables) + len(s.functions)
	out := make([]string, 0, total)
	for name := range s.aliases {
		out = append(out, name)
	}
	for name := range s.builtins {
		out = append(out, name)
	}
	for name := range s.executables {
		out = append(out, name)
	}
	for name := range s.functions {
		out = append(out, name)
	}
	return out
}

// TopLevelCommandsFromHistory returns the first whitespace-delimited
// token of each history entry, in history order, deduplicated while
// preserving first occurrence.
func (s SessionMetadata) TopLevelCommandsFromHistory() []string {
	seen := make(map[string]struct{}, len(s.history))
	out := make([]string, 0, len(s.history))
	for _, line := range s.history {
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}
		head := fields[0]
		if _, ok := seen[head]; ok {
			continue
		}
		seen[head] = struct{}{}
		out = append(out, head)
	}
	return out
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start != -1 {
				fields = append(fields, s[start:i])
				start = -1
			}
		} else if start == -1 {
			start = i
		}
	}
	if start != -1 {
		fields = append(fields, s[start:])
	}
	return fields
}
