package lutris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestWriteGameConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := GameConfig{
		Game: GameSection{Exe: "/games/Foo/foo.exe", Prefix: "/prefixes/foo"},
		Wine: WineSection{DXVK: true},
	}

	path, err := WriteGameConfig(dir, "foo-1700000000", cfg)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo-1700000000.yml"), path)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	var back GameConfig
	assert.NoError(t, yaml.Unmarshal(raw, &back))
	assert.Equal(t, cfg, back)
}

func TestWriteGameConfigOmitsEmptyPrefix(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteGameConfig(dir, "foo", GameConfig{
		Game: GameSection{Exe: "/g/foo"},
	})
	assert.NoError(t, err)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "prefix")
	assert.Contains(t, string(raw), "exe: /g/foo")
}

func TestWriteGameConfigBadDir(t *testing.T) {
	_, err := WriteGameConfig(filepath.Join(t.TempDir(), "missing"), "foo", GameConfig{})
	assert.Error(t, err)
}
