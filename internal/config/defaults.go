package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the default Space Defender configuration.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Player: PlayerConfig{
			Size:         40,
			BottomOffset: 100,
			MoveStep:     20,
		},
		Enemy: EnemyConfig{
			Size:        30,
			Speed:       3,
			SpawnChance: 0.02,
			MaxAlive:    8,
		},
		Bullet: BulletConfig{
			Size:  8,
			Speed: 10,
		},
		Scoring: ScoringConfig{
			KillReward: 10,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
			Stars:      50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}
