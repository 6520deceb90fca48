package lutris

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RunnerWine is the runner tag Lutris uses for Wine games.
const RunnerWine = "wine"

// Game maps onto the existing "games" table in Lutris's pga.db. The
// schema belongs to Lutris, so the table is never auto-migrated here;
// a database without it fails on the first query.
type Game struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"column:name"`
	Slug       string `gorm:"column:slug"`
	Runner     string `gorm:"column:runner"`
	Executable string `gorm:"column:executable"`
	Directory  string `gorm:"column:directory"`
	Installed  int    `gorm:"column:installed"`
	ConfigPath string `gorm:"column:configpath"`
}

func (Game) TableName() string {
	return "games"
}

// OpenCatalog opens the Lutris catalog database.
func OpenCatalog(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newCatalogLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}

	if err := db.Exec("PRAGMA busy_timeout=5000;").Error; err != nil {
		slog.Warn("Failed to set busy timeout for catalog DB", "error", err)
	}

	return db, nil
}

// CloseCatalog closes the underlying connection; errors are logged, not
// returned, since the run is over either way.
func CloseCatalog(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Failed to get catalog DB handle", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("Failed to close catalog DB", "error", err)
	}
}

// ExistingSlugs returns the set of slugs already present in the catalog.
func ExistingSlugs(db *gorm.DB) (map[string]struct{}, error) {
	var slugs []string
	if err := db.Model(&Game{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("read existing slugs: %w", err)
	}

	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}

	return set, nil
}
