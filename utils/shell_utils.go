package utils

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/diillson/shellfix/engine"
)

// Package-level indirections over the OS so tests can run hermetically.
var (
	osGetenv    = os.Getenv
	userCurrent = user.Current
	osStat      = os.Stat
	osReadFile  = os.ReadFile
)

// DetectShell inspects $SHELL and returns the matching engine.Shell,
// defaulting to Bash for anything unrecognized.
func DetectShell() engine.Shell {
	switch filepath.Base(osGetenv("SHELL")) {
	case "zsh":
		return engine.Zsh
	case "fish":
		return engine.Fish
	default:
		return engine.Bash
	}
}

// historyFilePath returns the on-disk history file for shell, or an
// error if the shell isn't one shellfix knows how to read history for.
func historyFilePath(shell engine.Shell) (string, error) {
	usr, err := userCurrent()
	if err != nil {
		return "", fmt.Errorf("determining current user: %w", err)
	}

	switch shell {
	case engine.Bash:
		return filepath.Join(usr.HomeDir, ".bash_history"), nil
	case engine.Zsh:
		return filepath.Join(usr.HomeDir, ".zsh_history"), nil
	case engine.Fish:
		return filepath.Join(usr.HomeDir, ".local", "share", "fish", "fish_history"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %v", shell)
	}
}

// ReadShellHistory reads and parses the current user's shell history
// file into an ordered list of command lines, most-recent-last.
func ReadShellHistory(shell engine.Shell) ([]string, error) {
	path, err := historyFilePath(shell)
	if err != nil {
		return nil, err
	}

	if _, err := osStat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("history file not found: %s", path)
	}

	data, err := osReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var lines []string
	switch shell {
	case engine.Zsh:
		lines = parseZshHistory(string(data))
	case engine.Fish:
		lines = parseFishHistory(string(data))
	default:
		lines = splitNonEmptyLines(string(data))
	}
	return lines, nil
}

// parseZshHistory strips zsh's extended-history metadata prefix
// (": <timestamp>:<elapsed>;") from each line, leaving just the
// command.
func parseZshHistory(data string) []string {
	var commands []string
	for _, line := range strings.Split(data, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if idx := strings.Index(line, ";"); idx != -1 && idx+1 < len(line) {
				commands = append(commands, line[idx+1:])
				continue
			}
		}
		commands = append(commands, line)
	}
	return commands
}

// parseFishHistory extracts the "cmd:" value from fish's YAML-ish
// history format.
func parseFishHistory(data string) []string {
	var commands []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if cmd, ok := strings.CutPrefix(line, "- cmd:"); ok {
			commands = append(commands, strings.TrimSpace(cmd))
		}
	}
	return commands
}

func splitNonEmptyLines(data string) []string {
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
