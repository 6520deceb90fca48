package heroic

import (
	"path/filepath"

	"heroic2lutris/internal/lutris"
)

// Directory returns the game's install directory, falling back to the
// executable's parent directory when the manifest has no explicit path.
func (g *Game) Directory() string {
	if g.Install.Path != "" {
		return g.Install.Path
	}
	return filepath.Dir(g.Install.Executable)
}

// ToGameConfig builds the Lutris config document for this game from its
// manifest entry and Wine options.
func (g *Game) ToGameConfig(s GameSettings) lutris.GameConfig {
	return lutris.GameConfig{
		Game: lutris.GameSection{
			Exe:    g.Install.Executable,
			Prefix: s.WinePrefix,
		},
		Wine: lutris.WineSection{
			DXVK:  s.DXVK,
			Esync: s.Esync,
			Fsync: s.Fsync,
		},
	}
}
