package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "borker.yaml"

// LoadBorker loads the game configuration.
// Search order: customPath -> ~/.borker/configs/borker.yaml -> ./configs/borker.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadBorker(customPath string) (BorkerConfig, error) {
	cfg := DefaultBorkerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBorkerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultBorkerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultBorkerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBorkerYAML, &cfg); err != nil {
		return DefaultBorkerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.borker, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".borker")
}

// Validate reports configurations the game cannot run with.
func (c BorkerConfig) Validate() error {
	switch {
	case c.Scene.Rows < 1:
		return fmt.Errorf("config: scene.rows must be at least 1, got %d", c.Scene.Rows)
	case c.Player.JumpDuration <= 0:
		return fmt.Errorf("config: player.jump_duration must be positive")
	case c.Obstacles.MaxGap < c.Obstacles.MinGap:
		return fmt.Errorf("config: obstacles.max_gap (%v) below min_gap (%v)", c.Obstacles.MaxGap, c.Obstacles.MinGap)
	case c.Clouds.MaxGap < c.Clouds.MinGap:
		return fmt.Errorf("config: clouds.max_gap (%v) below min_gap (%v)", c.Clouds.MaxGap, c.Clouds.MinGap)
	case c.Boss.BoulderCount < 0 || c.Boss.JumpWaves < 0:
		return fmt.Errorf("config: boss spawn counts must not be negative")
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BorkerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Runner.GameLength *= 0.5
		cfg.Battle.Length = cfg.Battle.MinLength
		cfg.Obstacles.MaxGap *= 1.5
		cfg.Obstacles.BoulderRate /= 2
		cfg.Obstacles.BoulderRateMax /= 2
	case DifficultyHard:
		cfg.Runner.GameLength *= 1.5
		cfg.Battle.Length += cfg.Battle.Length / 2
		cfg.Obstacles.MaxGap *= 0.6
		cfg.Obstacles.BoulderRate *= 4
		cfg.Boss.Cooldown /= 2
	case DifficultyFixed:
		cfg.Obstacles.GapShrinkPerSec = 0
		cfg.Obstacles.BoulderRateGrowth = 0
	}
}
