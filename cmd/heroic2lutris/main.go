package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"heroic2lutris/internal/config"
	"heroic2lutris/internal/migration"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func initLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}

// confirm asks for an explicit go-ahead; anything but y/yes aborts.
func confirm(r *bufio.Reader) bool {
	fmt.Print("Continue with import? [y/N]: ")
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func main() {
	// Initialize slog before anything else that might log
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.LoadSettings()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	libraryPath := flag.String("library", cfg.HeroicLibrary, "Path to Heroic sideload library.json")
	gamesConfigDir := flag.String("games-config", cfg.HeroicGamesConfig, "Path to Heroic GamesConfig directory")
	dbPath := flag.String("db", cfg.LutrisDB, "Path to Lutris pga.db")
	configDir := flag.String("config-dir", cfg.LutrisConfigDir, "Lutris games config directory (default: probe known locations)")
	dryRun := flag.Bool("dry-run", false, "Report what would be migrated without writing anything")
	assumeYes := flag.Bool("y", false, "Skip the confirmation prompt")
	flag.Parse()

	cfg.HeroicLibrary = *libraryPath
	cfg.HeroicGamesConfig = *gamesConfigDir
	cfg.LutrisDB = *dbPath
	cfg.LutrisConfigDir = *configDir

	initLogger(cfg.LogLevel)

	fmt.Println("--- Heroic to Lutris Game Importer ---")
	fmt.Println("This will add your installed Heroic sideload games to the Lutris catalog,")
	fmt.Println("writing a YAML config file and a database row for each.")
	fmt.Println()
	fmt.Println("IMPORTANT: Make sure Lutris is completely closed before running this.")
	fmt.Println()

	if !*dryRun && !*assumeYes {
		if !confirm(bufio.NewReader(os.Stdin)) {
			fmt.Println("Cancelled.")
			return
		}
	}

	report, err := migration.Run(cfg, migration.Options{DryRun: *dryRun})
	if err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("--- Summary ---")
	if *dryRun {
		fmt.Printf("Games that would be added: %d\n", report.Added)
	} else {
		fmt.Printf("Games added: %d\n", report.Added)
	}
	fmt.Printf("Games skipped: %d\n", report.Skipped)
	if !*dryRun {
		fmt.Println()
		fmt.Println("Done! You can now open Lutris to see your imported games.")
	}
}
