package lutris

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// configDirCandidates lists where Lutris may keep its per-game YAML
// configs, relative to the home directory. Order matters: the first
// existing directory wins.
func configDirCandidates(home string) []string {
	return []string{
		filepath.Join(home, ".local/share/lutris/games"),
		filepath.Join(home, ".config/lutris/games"),
		filepath.Join(home, ".var/app/net.lutris.Lutris/config/lutris/games"), // Flatpak
	}
}

// ProbeConfigDir returns the config directory Lutris would use without
// creating anything: the first existing candidate, or the most common
// location if none exist yet.
func ProbeConfigDir(home string) string {
	candidates := configDirCandidates(home)
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return candidates[0]
}

// FindConfigDir returns the directory Lutris reads game configs from.
// If none of the known locations exist, the most common one is created.
func FindConfigDir(home string) (string, error) {
	candidates := configDirCandidates(home)

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	dir := candidates[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create Lutris games config directory: %w", err)
	}
	slog.Info("Created Lutris games config directory", "path", dir)

	return dir, nil
}
