package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/alplock/alplock/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

var UserAlplockSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// Independent of the working directory, so it is ok to init here
	UserAlplockSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "alplock"),
		UserDataPath:    filepath.Join(dataDir, "alplock"),
		Username:        utils.GetUsername(),
	}
}
