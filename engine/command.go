// Package engine holds the foundational, dependency-free types and
// algorithms that every rule is built on: the command model, the
// correction value type, shlex split/join, fuzzy matching, and
// filesystem path repair.
package engine

import "strings"

// ExitCode is the raw exit status of a command, plus the classification
// rules for whether it counts as success or failure.
type ExitCode int

// SuccessExitCodes is the set of exit codes treated as success rather
// than failure. 130 (SIGINT) and 141 (SIGPIPE) join 0 by default; this
// is deliberately a variable, not a constant, so the config package can
// override it at startup without the engine importing config.
var SuccessExitCodes = map[int]bool{
	0:   true,
	130: true,
	141: true,
}

// IsSuccess reports whether code is classified as success.
func (c ExitCode) IsSuccess() bool {
	return SuccessExitCodes[int(c)]
}

// IsError is the complement of IsSuccess.
func (c ExitCode) IsError() bool {
	return !c.IsSuccess()
}

// Raw returns the underlying integer exit status.
func (c ExitCode) Raw() int {
	return int(c)
}

// Command represents a shell command the user already ran, along with
// its captured output and exit status. It is immutable once built.
type Command struct {
	input  string
	output string

	lowercaseOutput string
	argv            []string

	exitCode   ExitCode
	workingDir string
	hasWorkDir bool
}

// NewCommand builds a Command from its raw input line and captured
// output. input is split into argv via the shlex rules in shlex.go;
// unparseable input yields an empty argv rather than an error.
func NewCommand(input, output string, exitCode ExitCode) Command {
	input = strings.TrimSpace(input)
	output = strings.TrimSpace(output)

	return Command{
		input:           input,
		output:          output,
		lowercaseOutput: strings.ToLower(output),
		argv:            ShlexSplit(input),
		exitCode:        exitCode,
	}
}

// WithWorkingDir returns a copy of c with workingDir set. Rules that
// touch the filesystem require this to be set; the zero value means
// "unknown", distinct from an empty string.
func (c Command) WithWorkingDir(dir string) Command {
	c.workingDir = dir
	c.hasWorkDir = true
	return c
}

// Input returns the trimmed raw command line as typed.
func (c Command) Input() string { return c.input }

// Output returns the trimmed captured output.
func (c Command) Output() string { return c.output }

// LowercaseOutput returns the precomputed lowercase of Output.
func (c Command) LowercaseOutput() string { return c.lowercaseOutput }

// Argv returns the shlex-split parts of Input. Never mutate the
// returned slice; copy it first.
func (c Command) Argv() []string { return c.argv }

// ExitCode returns the command's exit status.
func (c Command) ExitCode() ExitCode { return c.exitCode }

// WorkingDir returns the working directory and whether one was set.
func (c Command) WorkingDir() (string, bool) { return c.workingDir, c.hasWorkDir }
