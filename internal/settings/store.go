// Package settings persists the helper's JSON configuration file. The file
// holds an open mapping (provider, endpoint, model at minimum) and is the
// only thing this tool writes to disk besides the keychain entry.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Known settings keys
const (
	KeyProvider = "provider"
	KeyEndpoint = "endpoint"
	KeyModel    = "model"
)

// Settings is the open mapping stored in the configuration file
type Settings map[string]any

// GetString returns the string value for key, or "" when absent or not a string
func (s Settings) GetString(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Store reads and writes the configuration file at a fixed path
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a settings store for the given file path
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load returns the parsed settings, or ok == false when the file is missing,
// unreadable or malformed. Load never fails; absence means "unconfigured".
func (st *Store) Load() (Settings, bool) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		st.logger.Debug("No settings file", zap.String("path", st.path), zap.Error(err))
		return nil, false
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		st.logger.Warn("Ignoring malformed settings file",
			zap.String("path", st.path),
			zap.Error(err))
		return nil, false
	}

	return s, true
}

// Save writes the settings as pretty-printed JSON, replacing any previous
// content wholesale. The containing directory is created if needed.
func (st *Store) Save(s Settings) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	st.logger.Debug("Settings saved", zap.String("path", st.path))
	return nil
}
