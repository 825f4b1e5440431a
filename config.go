package skitter

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunConfig configures a Game and the window Run opens.
type RunConfig struct {
	Title   string `json:"title"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	ShowFPS bool   `json:"showFPS"`
	Debug   bool   `json:"debug"`
	Mute    bool   `json:"mute"`

	// Trigger is "held" (repel every tick the button is down) or "press".
	Trigger string `json:"trigger"`

	// TexturePath is an image drawn over the enemy. Empty draws a solid
	// EnemyColor rectangle.
	TexturePath string `json:"texture"`
	EnemyScale  Vec2   `json:"enemyScale"`
	EnemyColor  Color  `json:"enemyColor"`
	ClearColor  Color  `json:"clearColor"`

	// ScriptPath is an input script replayed instead of live mouse input.
	ScriptPath string `json:"script"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "Skitter",
		Width:      640,
		Height:     480,
		Trigger:    TriggerHeld.String(),
		EnemyScale: DefaultEnemyScale,
		EnemyColor: Color{R: 0.9, G: 0.3, B: 0.3, A: 1},
		ClearColor: Color{R: 0.137, G: 0.118, B: 0.176, A: 1},
	}
}

// LoadRunConfig reads a JSON config file over DefaultRunConfig and
// validates the result.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if _, ok := ParseTrigger(c.Trigger); !ok {
		return fmt.Errorf("unknown trigger %q (want held or press)", c.Trigger)
	}
	if c.EnemyScale.X < 0 || c.EnemyScale.Y < 0 {
		return fmt.Errorf("enemy scale (%v,%v) must not be negative", c.EnemyScale.X, c.EnemyScale.Y)
	}
	return nil
}

// trigger returns the parsed Trigger. Call after Validate.
func (c RunConfig) trigger() Trigger {
	t, _ := ParseTrigger(c.Trigger)
	return t
}
