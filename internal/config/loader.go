package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "midway.yaml"

// LoadMidway loads the engine configuration.
// Search order: customPath -> ~/.arcade/configs/midway.yaml -> ./configs/midway.yaml -> embedded default.
// Each document is decoded on top of the built-in defaults, so partial files
// only override the keys they name. Only a broken customPath is an error;
// unreadable fallback locations are skipped.
func LoadMidway(customPath string) (MidwayConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MidwayConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return MidwayConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultMidwayYAML)
	if err != nil {
		return DefaultMidwayConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the built-in defaults.
func Parse(data []byte) (MidwayConfig, error) {
	cfg := DefaultMidwayConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MidwayConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMidwayPreset modifies the config based on a difficulty preset.
func ApplyMidwayPreset(cfg *MidwayConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.Count = cfg.Enemies.Count * 3 / 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.Count = cfg.Enemies.Count * 3 / 2
	}
}
