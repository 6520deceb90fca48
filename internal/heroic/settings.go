package heroic

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Per-game option files live in GamesConfig/<app_name>.json. The blob
// is keyed by the app name once more at the top level:
//
//	{"<app_name>": {"winePrefix": ..., "wineVersion": {"bin": ...}, ...}}

// GameSettings holds the Wine options Lutris cares about. The zero
// value means "no options configured".
type GameSettings struct {
	WinePrefix  string
	WineVersion string
	DXVK        bool
	Esync       bool
	Fsync       bool
}

type rawGameSettings struct {
	WinePrefix  string `json:"winePrefix"`
	WineVersion struct {
		Bin string `json:"bin"`
	} `json:"wineVersion"`
	AutoInstallDXVK bool `json:"autoInstallDxvk"`
	EnableEsync     bool `json:"enableEsync"`
	EnableFsync     bool `json:"enableFsync"`
}

// LoadGameSettings reads the option file for one game. A missing file
// yields the zero value; a malformed one is logged and treated as empty.
// Never fatal: options are best-effort.
func LoadGameSettings(dir, appName string) GameSettings {
	path := filepath.Join(dir, appName+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read game options", "app", appName, "error", err)
		}
		return GameSettings{}
	}

	var blob map[string]rawGameSettings
	if err := json.Unmarshal(raw, &blob); err != nil {
		slog.Warn("Failed to parse game options, treating as empty", "app", appName, "error", err)
		return GameSettings{}
	}

	rs, ok := blob[appName]
	if !ok {
		return GameSettings{}
	}

	return GameSettings{
		WinePrefix:  rs.WinePrefix,
		WineVersion: rs.WineVersion.Bin,
		DXVK:        rs.AutoInstallDXVK,
		Esync:       rs.EnableEsync,
		Fsync:       rs.EnableFsync,
	}
}
