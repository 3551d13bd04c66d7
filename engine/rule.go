package engine

// Rule is the capability set every correction rule exposes. Rules are
// stateless singletons: one instance per concrete rule type, safe to
// share across any number of concurrent dispatch calls.
type Rule interface {
	// ID is a stable, globally unique identifier for this rule.
	ID() string

	// ShouldBeConsideredByDefault is checked before Matches. The
	// default policy (see DefaultConsideration) is "only consider
	// commands that failed"; a rule may override this, e.g. bare
	// `cargo` exits 0 but should still be considered.
	ShouldBeConsideredByDefault(cmd Command, session SessionMetadata) bool

	// Matches is a cheap, pure structural check. Only called if
	// ShouldBeConsideredByDefault returned true.
	Matches(cmd Command, session SessionMetadata) bool

	// Generate produces zero or more Corrections. Only called if
	// Matches returned true.
	Generate(cmd Command, session SessionMetadata) []Correction
}

// DefaultConsideration is the default ShouldBeConsideredByDefault
// policy used by every rule in the corpus that doesn't override it:
// only consider commands whose exit code classifies as an error.
func DefaultConsideration(cmd Command, _ SessionMetadata) bool {
	return cmd.ExitCode().IsError()
}

// AlwaysConsidered is a ShouldBeConsideredByDefault implementation for
// rules that must run regardless of exit code (e.g. bare `cargo`).
func AlwaysConsidered(Command, SessionMetadata) bool {
	return true
}

// CommandGroup declares one or more command names (argv[0] values) that
// share an ordered list of rules, e.g. "grep" and "egrep". Order is the
// evaluation order.
type CommandGroup struct {
	CommandNames []string
	Rules        []Rule
}
