package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Settings struct {
	HeroicLibrary     string `env:"HEROIC_LIBRARY"      envDefault:"~/.config/heroic/sideload_apps/library.json"`
	HeroicGamesConfig string `env:"HEROIC_GAMES_CONFIG" envDefault:"~/.config/heroic/GamesConfig"`
	LutrisDB          string `env:"LUTRIS_DB"           envDefault:"~/.local/share/lutris/pga.db"`
	LutrisConfigDir   string `env:"LUTRIS_CONFIG_DIR"`
	LogLevel          string `env:"LOG_LEVEL"           envDefault:"INFO"`
}

func LoadSettings() (*Settings, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("Error loading .env file", "error", err)
		}
	}

	cfg := Settings{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cfg.HeroicLibrary = ExpandHome(cfg.HeroicLibrary, home)
	cfg.HeroicGamesConfig = ExpandHome(cfg.HeroicGamesConfig, home)
	cfg.LutrisDB = ExpandHome(cfg.LutrisDB, home)
	cfg.LutrisConfigDir = ExpandHome(cfg.LutrisConfigDir, home)

	return &cfg, nil
}

// ExpandHome replaces a leading "~" with the given home directory.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
