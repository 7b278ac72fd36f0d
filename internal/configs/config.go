package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultListenAddr is where the web UI binds unless configured otherwise.
// Localhost only: the API carries no authentication.
const DefaultListenAddr = "127.0.0.1:4577"

// maxRecentFolders caps the recent-folders list in the user config.
const maxRecentFolders = 10

type UserConfig struct {
	Install       Install  `toml:"install"`
	Server        Server   `toml:"server"`
	RecentFolders []string `toml:"recent_folders"`
}

type Install struct {
	UUID string `toml:"install_uuid"`
}

type Server struct {
	Addr string `toml:"addr"`
}

func userConfigPath() string {
	return filepath.Join(UserEnvdeckSettings.UserConfigsPath, "config.toml")
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file loads as an empty config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := userConfigPath()

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(userConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// EnsureUserConfig ensures the user configuration exists and has an
// install UUID and a listen address.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	dirty := false
	if config.Install.UUID == "" {
		config.Install.UUID = uuid.New().String()
		dirty = true
	}
	if config.Server.Addr == "" {
		config.Server.Addr = DefaultListenAddr
		dirty = true
	}

	if dirty {
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// TouchRecentFolder records a folder visit: the folder moves (or is
// inserted) at the front of the recent list, which stays deduplicated and
// capped. The updated config is persisted.
func TouchRecentFolder(config *UserConfig, folder string) error {
	recent := make([]string, 0, len(config.RecentFolders)+1)
	recent = append(recent, folder)
	for _, f := range config.RecentFolders {
		if f != folder {
			recent = append(recent, f)
		}
	}
	if len(recent) > maxRecentFolders {
		recent = recent[:maxRecentFolders]
	}
	config.RecentFolders = recent

	return SaveUserConfig(config)
}
