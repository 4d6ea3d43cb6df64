// Package config provides YAML-based game configuration loading and
// validation for Space Defender.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// DefenderConfig contains all configuration for the Space Defender game.
// Distances are world units; speeds are world units per tick.
type DefenderConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the ship's top
	MoveStep     float64 `yaml:"move_step"`     // Keyboard nudge distance
}

// EnemyConfig defines descending enemies and the spawn policy.
type EnemyConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability, 0..1
	MaxAlive    int     `yaml:"max_alive"`    // No spawn at or above this count
}

// BulletConfig defines player shots.
type BulletConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// ScoringConfig defines rewards.
type ScoringConfig struct {
	KillReward int `yaml:"kill_reward"`
}

// DisplayConfig defines how world units map onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Stars      int     `yaml:"stars"`
}

// Validate checks that every field is usable by the simulation.
func (c DefenderConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"player.size", c.Player.Size},
		{"player.move_step", c.Player.MoveStep},
		{"enemy.size", c.Enemy.Size},
		{"enemy.speed", c.Enemy.Speed},
		{"bullet.size", c.Bullet.Size},
		{"bullet.speed", c.Bullet.Speed},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.val)
		}
	}

	if c.Player.BottomOffset < 0 {
		return fmt.Errorf("%w: player.bottom_offset must not be negative, got %v", ErrInvalid, c.Player.BottomOffset)
	}
	if c.Enemy.SpawnChance < 0 || c.Enemy.SpawnChance > 1 {
		return fmt.Errorf("%w: enemy.spawn_chance must be within [0, 1], got %v", ErrInvalid, c.Enemy.SpawnChance)
	}
	if c.Enemy.MaxAlive < 0 {
		return fmt.Errorf("%w: enemy.max_alive must not be negative, got %d", ErrInvalid, c.Enemy.MaxAlive)
	}
	if c.Scoring.KillReward < 0 {
		return fmt.Errorf("%w: scoring.kill_reward must not be negative, got %d", ErrInvalid, c.Scoring.KillReward)
	}
	if c.Display.Stars < 0 {
		return fmt.Errorf("%w: display.stars must not be negative, got %d", ErrInvalid, c.Display.Stars)
	}
	return nil
}
