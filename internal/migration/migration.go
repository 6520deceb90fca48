package migration

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"heroic2lutris/internal/config"
	"heroic2lutris/internal/heroic"
	"heroic2lutris/internal/lutris"

	"gorm.io/gorm"
)

// Options controls a migration run.
type Options struct {
	// DryRun classifies every manifest entry but writes nothing.
	DryRun bool
}

// Report summarizes a run. Entries that are not installed are neither
// added nor skipped.
type Report struct {
	Added   int
	Skipped int
}

// Run migrates installed Heroic sideload games into the Lutris catalog:
// one YAML config plus one catalog row per game, all rows in a single
// transaction committed after the loop. Per-game failures skip that
// game; anything wrong before the loop aborts with no writes.
func Run(cfg *config.Settings, opts Options) (*Report, error) {
	slog.Info("Migrating Heroic library", "library", cfg.HeroicLibrary, "catalog", cfg.LutrisDB)

	if _, err := os.Stat(cfg.HeroicLibrary); err != nil {
		return nil, fmt.Errorf("heroic library manifest: %w", err)
	}
	if _, err := os.Stat(cfg.LutrisDB); err != nil {
		return nil, fmt.Errorf("lutris catalog database: %w", err)
	}

	configDir, err := resolveConfigDir(cfg, opts.DryRun)
	if err != nil {
		return nil, err
	}

	lib, err := heroic.LoadLibrary(cfg.HeroicLibrary)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded library manifest", "games", len(lib.Games))

	db, err := lutris.OpenCatalog(cfg.LutrisDB)
	if err != nil {
		return nil, err
	}
	defer lutris.CloseCatalog(db)

	existing, err := lutris.ExistingSlugs(db)
	if err != nil {
		return nil, err
	}

	var tx *gorm.DB
	if !opts.DryRun {
		tx = db.Begin()
		if tx.Error != nil {
			return nil, fmt.Errorf("begin transaction: %w", tx.Error)
		}
	}

	report := &Report{}

	// The loop is guarded so an unexpected panic still commits the rows
	// inserted so far instead of losing the whole run.
	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Unexpected error during migration", "panic", r, "stack", string(debug.Stack()))
			}
		}()

		for i := range lib.Games {
			game := &lib.Games[i]
			if !game.IsInstalled {
				continue
			}

			if game.Title == "" {
				slog.Warn("Skipping game with no title", "app", game.AppName)
				report.Skipped++
				continue
			}

			slug := lutris.Slug(game.Title)

			if game.Install.Executable == "" {
				slog.Warn("Skipping game: executable path not found in library", "title", game.Title)
				report.Skipped++
				continue
			}

			if _, dup := existing[slug]; dup {
				slog.Warn("Skipping game: slug already in catalog", "title", game.Title, "slug", slug)
				report.Skipped++
				continue
			}

			if opts.DryRun {
				slog.Info("Would add game", "title", game.Title, "slug", slug, "directory", game.Directory())
				existing[slug] = struct{}{}
				report.Added++
				continue
			}

			if err := addGame(tx, game, slug, cfg.HeroicGamesConfig, configDir); err != nil {
				slog.Error("Failed to add game", "title", game.Title, "error", err)
				report.Skipped++
				continue
			}

			existing[slug] = struct{}{}
			report.Added++
		}
	}()

	if !opts.DryRun {
		if err := tx.Commit().Error; err != nil {
			return report, fmt.Errorf("commit catalog inserts: %w", err)
		}
	}

	slog.Info("Migration complete", "added", report.Added, "skipped", report.Skipped)

	return report, nil
}

// addGame writes the YAML config and the catalog row for one game. If
// the insert fails after the config was written, the orphaned file is
// removed before the game is reported as skipped.
func addGame(tx *gorm.DB, game *heroic.Game, slug, gamesConfigDir, configDir string) error {
	settings := heroic.LoadGameSettings(gamesConfigDir, game.AppName)

	configName := fmt.Sprintf("%s-%d", slug, time.Now().Unix())
	configPath, err := lutris.WriteGameConfig(configDir, configName, game.ToGameConfig(settings))
	if err != nil {
		return err
	}

	row := lutris.Game{
		Name:       game.Title,
		Slug:       slug,
		Runner:     lutris.RunnerWine,
		Executable: game.Install.Executable,
		Directory:  game.Directory(),
		Installed:  1,
		ConfigPath: configName,
	}
	if err := gorm.G[lutris.Game](tx).Create(context.Background(), &row); err != nil {
		if rmErr := os.Remove(configPath); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Warn("Failed to remove orphaned game config", "path", configPath, "error", rmErr)
		}
		return fmt.Errorf("insert catalog row: %w", err)
	}

	slog.Info("Added game",
		"title", game.Title,
		"executable", game.Install.Executable,
		"prefix", settings.WinePrefix,
		"config", configPath)

	return nil
}

// resolveConfigDir picks the destination for YAML configs. An explicit
// setting wins; otherwise the known Lutris locations are probed. Dry
// runs never create the directory.
func resolveConfigDir(cfg *config.Settings, dryRun bool) (string, error) {
	if cfg.LutrisConfigDir != "" {
		if !dryRun {
			if err := os.MkdirAll(cfg.LutrisConfigDir, 0755); err != nil {
				return "", fmt.Errorf("create Lutris games config directory: %w", err)
			}
		}
		return cfg.LutrisConfigDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	if dryRun {
		return lutris.ProbeConfigDir(home), nil
	}

	return lutris.FindConfigDir(home)
}
