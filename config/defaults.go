package config

// Default tunables for the correction engine.
const (
	// DefaultFuzzyCutoff is the minimum similarity ratio (see
	// engine.Closest) for an unknown token to be considered a typo of
	// a known command or subcommand.
	DefaultFuzzyCutoff = "0.6"

	// DefaultSuccessExitCodes lists the shell exit codes that count as
	// "not an error" even though they are nonzero: 130 is Ctrl-C
	// (SIGINT), 141 is SIGPIPE from a truncated pipeline.
	DefaultSuccessExitCodes = "0,130,141"

	// DefaultMaxHistoryEntries is the default MAX_HISTORY_ENTRIES value.
	// The rules do not read it; they scan the whole session history.
	DefaultMaxHistoryEntries = "1000"

	DefaultLogLevel   = "info"
	DefaultLogMaxSize = "10MB"
	DefaultLogFile    = "shellfix.log"
)
