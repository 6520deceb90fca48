package lutris

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameConfig is the YAML document Lutris reads for a wine-runner game.
// Field order in the emitted document follows declaration order.
type GameConfig struct {
	Game GameSection `yaml:"game"`
	Wine WineSection `yaml:"wine"`
}

type GameSection struct {
	Exe    string `yaml:"exe"`
	Prefix string `yaml:"prefix,omitempty"`
}

type WineSection struct {
	DXVK  bool `yaml:"dxvk"`
	Esync bool `yaml:"esync"`
	Fsync bool `yaml:"fsync"`
}

// WriteGameConfig serializes cfg to <dir>/<configName>.yml and returns
// the written path.
func WriteGameConfig(dir, configName string, cfg GameConfig) (string, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal game config: %w", err)
	}

	path := filepath.Join(dir, configName+".yml")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("write game config: %w", err)
	}

	return path, nil
}
