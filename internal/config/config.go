// Package config provides YAML-based game configuration loading and
// difficulty presets for Borker Run.
package config

import "time"

// BorkerConfig contains all tunables of the game.
type BorkerConfig struct {
	Scene     SceneConfig    `yaml:"scene"`
	Player    PlayerConfig   `yaml:"player"`
	Runner    RunnerConfig   `yaml:"runner"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Battle    BattleConfig   `yaml:"battle"`
	Boss      BossConfig     `yaml:"boss"`
	Controls  ControlsConfig `yaml:"controls"`
}

// SceneConfig defines the world grid.
type SceneConfig struct {
	Rows           int     `yaml:"rows"`
	TileWidth      float64 `yaml:"tile_width"`
	TileLength     float64 `yaml:"tile_length"`
	RenderDistance float64 `yaml:"render_distance"`
}

// PlayerConfig defines movement and jump parameters.
type PlayerConfig struct {
	Size           float64       `yaml:"size"`
	Speed          float64       `yaml:"speed"` // units per second
	RowChangeDelay time.Duration `yaml:"row_change_delay"`
	JumpHeight     float64       `yaml:"jump_height"`
	JumpDuration   time.Duration `yaml:"jump_duration"`
}

// Vec is a YAML-friendly 3D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CameraConfig positions the follow camera relative to the player.
type CameraConfig struct {
	Offset Vec     `yaml:"offset"`
	Ahead  float64 `yaml:"ahead"`
}

// RunnerConfig defines the endless-runner segment.
type RunnerConfig struct {
	GameLength    float64      `yaml:"game_length"`
	DeathPenalty  float64      `yaml:"death_penalty"`
	MinGameLength float64      `yaml:"min_game_length"`
	UnloadSizes   float64      `yaml:"unload_sizes"`
	Camera        CameraConfig `yaml:"camera"`
}

// ObstacleConfig defines obstacle spawning and difficulty ramps.
type ObstacleConfig struct {
	SpawnAhead        float64 `yaml:"spawn_ahead"`
	MinGap            float64 `yaml:"min_gap"`
	MaxGap            float64 `yaml:"max_gap"`
	MaxGapFloor       float64 `yaml:"max_gap_floor"`
	GapShrinkPerSec   float64 `yaml:"gap_shrink_per_sec"`
	BoulderRate       float64 `yaml:"boulder_rate"`
	BoulderRateGrowth float64 `yaml:"boulder_rate_growth"` // per second
	BoulderRateMax    float64 `yaml:"boulder_rate_max"`
	CactusSize        float64 `yaml:"cactus_size"`
	BoulderSize       float64 `yaml:"boulder_size"`
	BossOffset        float64 `yaml:"boss_offset"`
}

// CloudConfig defines decorative cloud spawning.
type CloudConfig struct {
	SpawnAhead float64 `yaml:"spawn_ahead"`
	MinGap     float64 `yaml:"min_gap"`
	MaxGap     float64 `yaml:"max_gap"`
	Lateral    float64 `yaml:"lateral"`
	MinHeight  float64 `yaml:"min_height"`
	MaxHeight  float64 `yaml:"max_height"`
}

// BattleConfig defines the boss fight segment.
type BattleConfig struct {
	Length       time.Duration `yaml:"length"`
	DeathPenalty time.Duration `yaml:"death_penalty"`
	MinLength    time.Duration `yaml:"min_length"`
	BossDistance float64       `yaml:"boss_distance"`
	FloorPadding float64       `yaml:"floor_padding"`
	Camera       CameraConfig  `yaml:"camera"`
}

// BossConfig defines attack timing.
type BossConfig struct {
	Cooldown        time.Duration `yaml:"cooldown"`
	ThrowOffset     float64       `yaml:"throw_offset"`
	BoulderCount    int           `yaml:"boulder_count"`
	BoulderInterval time.Duration `yaml:"boulder_interval"`
	JumpWaves       int           `yaml:"jump_waves"`
	JumpInterval    time.Duration `yaml:"jump_interval"`
	MissileInterval time.Duration `yaml:"missile_interval"`
	MissileSize     float64       `yaml:"missile_size"`
	MissileDelay    time.Duration `yaml:"missile_delay"`
}

// ControlsConfig defines swipe thresholds in input units.
type ControlsConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"`
	JumpThreshold  float64 `yaml:"jump_threshold"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
