package heroic

import (
	"encoding/json"
	"fmt"
	"os"
)

// The sideload library is a single JSON file with a top-level "games"
// array. Install state and paths live under each game's "install" key.

// Library mirrors ~/.config/heroic/sideload_apps/library.json.
type Library struct {
	Games []Game `json:"games"`
}

type Game struct {
	AppName     string      `json:"app_name"`
	Title       string      `json:"title"`
	IsInstalled bool        `json:"is_installed"`
	Install     InstallInfo `json:"install"`
}

type InstallInfo struct {
	Executable string `json:"executable"`
	Path       string `json:"path"`
}

// LoadLibrary reads and parses the sideload library manifest. A missing
// or malformed file is an error; the caller aborts before any writes.
func LoadLibrary(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library manifest: %w", err)
	}

	var lib Library
	if err := json.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("parse library manifest %s: %w", path, err)
	}

	return &lib, nil
}
