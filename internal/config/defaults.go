package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/borker.yaml
var defaultBorkerYAML []byte

// DefaultBorkerConfig returns the default configuration.
func DefaultBorkerConfig() BorkerConfig {
	return BorkerConfig{
		Scene: SceneConfig{
			Rows:           3,
			TileWidth:      20,
			TileLength:     30,
			RenderDistance: 500,
		},
		Player: PlayerConfig{
			Size:           1,
			Speed:          50,
			RowChangeDelay: 200 * time.Millisecond,
			JumpHeight:     25,
			JumpDuration:   time.Second,
		},
		Runner: RunnerConfig{
			GameLength:    6000,
			DeathPenalty:  500,
			MinGameLength: 2000,
			UnloadSizes:   4,
			Camera: CameraConfig{
				Offset: Vec{X: 0, Y: 15, Z: -20},
				Ahead:  20,
			},
		},
		Obstacles: ObstacleConfig{
			SpawnAhead:        300,
			MinGap:            10,
			MaxGap:            100,
			MaxGapFloor:       30,
			GapShrinkPerSec:   1,
			BoulderRate:       0.005,
			BoulderRateGrowth: 0.0001,
			BoulderRateMax:    0.15,
			CactusSize:        3,
			BoulderSize:       4,
			BossOffset:        5,
		},
		Clouds: CloudConfig{
			SpawnAhead: 700,
			MinGap:     50,
			MaxGap:     200,
			Lateral:    150,
			MinHeight:  40,
			MaxHeight:  90,
		},
		Battle: BattleConfig{
			Length:       100 * time.Second,
			DeathPenalty: 10 * time.Second,
			MinLength:    50 * time.Second,
			BossDistance: 200,
			FloorPadding: 200,
			Camera: CameraConfig{
				Offset: Vec{X: 0, Y: 15, Z: -40},
				Ahead:  500,
			},
		},
		Boss: BossConfig{
			Cooldown:        time.Second,
			ThrowOffset:     80,
			BoulderCount:    5,
			BoulderInterval: 500 * time.Millisecond,
			JumpWaves:       5,
			JumpInterval:    time.Second,
			MissileInterval: 750 * time.Millisecond,
			MissileSize:     3,
			MissileDelay:    2 * time.Second,
		},
		Controls: ControlsConfig{
			SwipeThreshold: 50,
			JumpThreshold:  50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBorkerYAML
}
