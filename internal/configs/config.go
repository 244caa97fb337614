package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

type UserConfig struct {
	Install Install `toml:"install"`
	Batch   Batch   `toml:"batch"`
	Audit   Audit   `toml:"audit"`
}

type Install struct {
	UUID string `toml:"install_uuid"`
}

type Batch struct {
	// Workers is the manifest worker pool size. Zero means one worker
	// per logical CPU.
	Workers int `toml:"workers"`
}

type Audit struct {
	Enabled bool `toml:"enabled"`
}

// DefaultUserConfig returns the configuration written on first run.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Audit: Audit{Enabled: true},
	}
}

func userConfigPath() string {
	return filepath.Join(UserAlplockSettings.UserConfigsPath, "config.toml")
}

// LoadUserConfig loads the user configuration from the config file. A
// missing file is not an error; defaults are returned instead.
func LoadUserConfig() (*UserConfig, error) {
	config := DefaultUserConfig()

	if _, err := os.Stat(userConfigPath()); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(userConfigPath(), config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file, creating
// the config directory if needed.
func SaveUserConfig(config *UserConfig) error {
	path := userConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// GenerateInstallUUID generates a new UUID for this installation.
func GenerateInstallUUID() string {
	return uuid.New().String()
}

// EnsureUserConfig ensures the user configuration exists and has an
// installation UUID, creating both on first run.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.Install.UUID == "" {
		config.Install.UUID = GenerateInstallUUID()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
