package utils

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/diillson/shellfix/version"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// GetEnvOrDefault returns the named environment variable, or
// defaultValue if it is unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GenerateUUID returns a new random UUID, used to correlate one
// dispatch call's log lines.
func GenerateUUID() string {
	return uuid.New().String()
}

// GetTerminalSize returns the width and height of stdout, used by the
// demo command to decide between a padded table and a plain list.
func GetTerminalSize() (width int, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// LogStartupInfo logs the demo command's build metadata at startup.
func LogStartupInfo(logger *zap.Logger) {
	logger.Info("shellfixdemo started",
		zap.String("version", version.Version),
		zap.String("commit", version.CommitHash),
		zap.String("buildDate", version.BuildDate),
		zap.String("goVersion", runtime.Version()),
		zap.String("os", runtime.GOOS),
		zap.String("arch", runtime.GOARCH),
	)
}

// ParseSize converts a human-readable size string (e.g. "50MB") to
// bytes.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(strings.ToUpper(sizeStr))
	var multiplier int64 = 1

	unit := ""
	switch {
	case strings.HasSuffix(sizeStr, "KB"):
		unit, multiplier = "KB", 1024
	case strings.HasSuffix(sizeStr, "MB"):
		unit, multiplier = "MB", 1024*1024
	case strings.HasSuffix(sizeStr, "GB"):
		unit, multiplier = "GB", 1024*1024*1024
	}
	if unit != "" {
		sizeStr = strings.TrimSuffix(sizeStr, unit)
	}

	size, err := strconv.ParseInt(strings.TrimSpace(sizeStr), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size: %s", sizeStr)
	}
	return size * multiplier, nil
}
