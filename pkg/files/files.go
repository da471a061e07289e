package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gridley/gridley-cli/pkg/models"
)

const (
	GridleyDir   = ".gridley"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .gridley directory and a default
// settings file. Existing settings are left alone.
func InitProjectStructure() error {
	if err := os.MkdirAll(GridleyDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", GridleyDir, err)
	}

	path := filepath.Join(GridleyDir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads settings.yaml, filling missing fields with defaults.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(GridleyDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	settings.Normalize()
	return &settings, nil
}

// WriteSettings saves the settings file.
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(GridleyDir, SettingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// LoadSettingsWithDefault reads settings, falling back to defaults when the
// project is uninitialized or the file is unreadable.
func LoadSettingsWithDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}
