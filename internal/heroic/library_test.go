package heroic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadLibrary(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "library.json")

	manifest := `{
		"games": [
			{
				"app_name": "abc123",
				"title": "Foo",
				"is_installed": true,
				"install": {"executable": "/games/Foo/foo.exe", "path": "/games/Foo"}
			},
			{
				"app_name": "def456",
				"title": "Bar",
				"is_installed": false,
				"install": {}
			}
		]
	}`
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	lib, err := LoadLibrary(path)
	assert.NoError(t, err)
	assert.Len(t, lib.Games, 2)

	assert.Equal(t, "abc123", lib.Games[0].AppName)
	assert.Equal(t, "Foo", lib.Games[0].Title)
	assert.True(t, lib.Games[0].IsInstalled)
	assert.Equal(t, "/games/Foo/foo.exe", lib.Games[0].Install.Executable)
	assert.Equal(t, "/games/Foo", lib.Games[0].Install.Path)

	assert.False(t, lib.Games[1].IsInstalled)
	assert.Empty(t, lib.Games[1].Install.Executable)
}

func TestLoadLibraryMissing(t *testing.T) {
	_, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadLibraryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	_, err := LoadLibrary(path)
	assert.Error(t, err)
}
