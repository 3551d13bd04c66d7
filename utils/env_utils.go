package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// GetEnv returns the named environment variable's value, logging at
// info level and returning defaultValue when it is unset.
func GetEnv(key, defaultValue string, logger *zap.Logger) (string, bool) {
	value := os.Getenv(key)
	if value == "" {
		logger.Info(fmt.Sprintf("%s not set, using default: %s", key, defaultValue))
		return defaultValue, true
	}
	return value, false
}
