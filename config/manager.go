package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diillson/shellfix/utils"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigManager centralizes access to every tunable. Precedence, low
// to high: built-in defaults, the optional YAML file, the .env file,
// then process environment variables.
type ConfigManager struct {
	mu       sync.RWMutex
	values   map[string]interface{}
	logger   *zap.Logger
	filePath string
	watcher  *fsnotify.Watcher
}

// Global is the process-wide ConfigManager singleton.
var Global *ConfigManager

// New creates a ConfigManager. filePath may be empty, in which case
// SHELLFIX_CONFIG (or no file at all) is used.
func New(logger *zap.Logger, filePath string) *ConfigManager {
	return &ConfigManager{
		values:   make(map[string]interface{}),
		logger:   logger,
		filePath: filePath,
	}
}

// Load loads every source in precedence order.
func (cm *ConfigManager) Load() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.loadDefaults()
	cm.loadConfigFile()
	cm.loadEnvFile()
	cm.loadEnvVars()
}

// Reload re-runs Load, discarding previously-resolved values. The
// rule registry is immutable and unaffected by a reload.
func (cm *ConfigManager) Reload(logger *zap.Logger) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.logger = logger
	cm.values = make(map[string]interface{})
	cm.loadDefaults()
	cm.loadConfigFile()
	cm.loadEnvFile()
	cm.loadEnvVars()
	cm.logger.Info("configuration reloaded")
}

func (cm *ConfigManager) loadDefaults() {
	cm.values["FUZZY_CUTOFF"] = DefaultFuzzyCutoff
	cm.values["SUCCESS_EXIT_CODES"] = DefaultSuccessExitCodes
	cm.values["MAX_HISTORY_ENTRIES"] = DefaultMaxHistoryEntries
	cm.values["LOG_LEVEL"] = DefaultLogLevel
	cm.values["LOG_MAX_SIZE"] = DefaultLogMaxSize
	cm.values["LOG_FILE"] = DefaultLogFile
}

// resolvedFilePath returns the YAML config path to use: the explicit
// filePath, else SHELLFIX_CONFIG, else empty (no file).
func (cm *ConfigManager) resolvedFilePath() string {
	if cm.filePath != "" {
		return cm.filePath
	}
	return os.Getenv("SHELLFIX_CONFIG")
}

// loadConfigFile merges in the optional YAML tunables file.
func (cm *ConfigManager) loadConfigFile() {
	path := cm.resolvedFilePath()
	if path == "" {
		return
	}

	content, err := utils.ReadFileContent(path, 0)
	if err != nil {
		cm.logger.Debug("config file not read", zap.String("path", path), zap.Error(err))
		return
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &parsed); err != nil {
		cm.logger.Warn("config file is not valid YAML", zap.String("path", path), zap.Error(err))
		return
	}

	for key, value := range parsed {
		cm.values[strings.ToUpper(key)] = fmt.Sprintf("%v", value)
	}
}

// loadEnvFile merges in the .env file, which does not override
// existing process environment variables.
func (cm *ConfigManager) loadEnvFile() {
	envMap, err := godotenv.Read()
	if err != nil {
		cm.logger.Debug(".env file not found or unreadable", zap.Error(err))
		return
	}
	for key, value := range envMap {
		cm.values[key] = value
	}
}

// loadEnvVars merges in process environment variables, the highest
// precedence source.
func (cm *ConfigManager) loadEnvVars() {
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			cm.values[pair[0]] = pair[1]
		}
	}
}

// Set injects a value directly, e.g. from a command-line flag.
func (cm *ConfigManager) Set(key string, value interface{}) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.values[key] = value
}

// GetString returns a configuration value as a string.
func (cm *ConfigManager) GetString(key string) string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if val, ok := cm.values[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
		return fmt.Sprintf("%v", val)
	}
	return ""
}

// GetInt returns a configuration value as an int.
func (cm *ConfigManager) GetInt(key string, defaultValue int) int {
	valStr := cm.GetString(key)
	if valStr == "" {
		return defaultValue
	}
	if intVal, err := strconv.Atoi(valStr); err == nil {
		return intVal
	}
	return defaultValue
}

// GetFloat returns a configuration value as a float64.
func (cm *ConfigManager) GetFloat(key string, defaultValue float64) float64 {
	valStr := cm.GetString(key)
	if valStr == "" {
		return defaultValue
	}
	if floatVal, err := strconv.ParseFloat(valStr, 64); err == nil {
		return floatVal
	}
	return defaultValue
}

// GetBool returns a configuration value as a bool.
func (cm *ConfigManager) GetBool(key string, defaultValue bool) bool {
	valStr := cm.GetString(key)
	if valStr == "" {
		return defaultValue
	}
	if boolVal, err := strconv.ParseBool(valStr); err == nil {
		return boolVal
	}
	return defaultValue
}

// GetDuration returns a configuration value as a time.Duration.
func (cm *ConfigManager) GetDuration(key string, defaultValue time.Duration) time.Duration {
	valStr := cm.GetString(key)
	if valStr == "" {
		return defaultValue
	}
	if durVal, err := time.ParseDuration(valStr); err == nil {
		return durVal
	}
	return defaultValue
}

// GetIntList parses a comma-separated configuration value into ints,
// used for SUCCESS_EXIT_CODES.
func (cm *ConfigManager) GetIntList(key string, defaultValue []int) []int {
	valStr := cm.GetString(key)
	if valStr == "" {
		return defaultValue
	}
	parts := strings.Split(valStr, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return defaultValue
		}
		out = append(out, n)
	}
	return out
}

// FuzzyCutoff returns the minimum similarity ratio for typo matching.
func (cm *ConfigManager) FuzzyCutoff() float64 {
	return cm.GetFloat("FUZZY_CUTOFF", 0.6)
}

// SuccessExitCodes returns the exit codes treated as non-error.
func (cm *ConfigManager) SuccessExitCodes() []int {
	return cm.GetIntList("SUCCESS_EXIT_CODES", []int{0, 130, 141})
}

// MaxHistoryEntries returns the configured MAX_HISTORY_ENTRIES value.
// No rule reads it: NoCommand and History scan the whole history the
// session supplies.
func (cm *ConfigManager) MaxHistoryEntries() int {
	return cm.GetInt("MAX_HISTORY_ENTRIES", 1000)
}

// Watch starts an fsnotify watch on the resolved config file's
// directory, reloads and calls onChange whenever that file is written
// or created. With no config file configured it returns a no-op closer
// and a nil error. The returned error is non-nil only if the watcher
// could not be created or the file's directory could not be watched.
func (cm *ConfigManager) Watch(onChange func()) (func() error, error) {
	path := cm.resolvedFilePath()
	if path == "" {
		return func() error { return nil }, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	cm.watcher = watcher

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					cm.Reload(cm.logger)
					if onChange != nil {
						onChange()
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cm.logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Close, nil
}
