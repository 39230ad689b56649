// Package config holds the settings shared by the front ends: how deep the
// engine looks, which side it plays and how much it logs.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"connect4-engine/c4board"
)

// Difficulty names a preset search depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Insane
)

var difficultyNames = [...]string{"Easy", "Medium", "Hard", "Expert", "Insane"}

// difficultyDepths is in plies, indexed by Difficulty.
var difficultyDepths = [...]int{2, 4, 6, 8, 10}

func (d Difficulty) String() string {
	if d < Easy || d > Insane {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// ParseDifficulty accepts a difficulty name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// DepthFor returns the search depth of a difficulty preset.
func DepthFor(d Difficulty) (int, error) {
	if d < Easy || d > Insane {
		return 0, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return difficultyDepths[d], nil
}

// DifficultyFor returns the strongest preset that does not search deeper
// than depth. Anything below the Easy depth reports Easy.
func DifficultyFor(depth int) Difficulty {
	d := Easy
	for i, presetDepth := range difficultyDepths {
		if depth >= presetDepth {
			d = Difficulty(i)
		}
	}
	return d
}

// MaxDepth caps Depth; a full board is 42 plies away from the start.
const MaxDepth = c4board.Cells

// Config holds all engine-facing settings.
type Config struct {
	Difficulty Difficulty
	Depth      int            // plies searched per engine move
	EngineSide c4board.Player // the engine maximizes when this is Player2
	AutoReply  bool           // the engine answers each human move on its own
	TimeBudget time.Duration  // non-zero switches to iterative deepening
	Trace      bool
	EvalCache  int // megabytes; zero disables the evaluation cache
	LogLevel   zerolog.Level
}

// DefaultEvalCacheMB is the evaluation cache size NewConfig picks.
const DefaultEvalCacheMB = 16

// NewConfig returns the defaults: Medium strength, engine on player 2, no
// time budget and info logging.
func NewConfig() *Config {
	return &Config{
		Difficulty: Medium,
		Depth:      difficultyDepths[Medium],
		EngineSide: c4board.Player2,
		EvalCache:  DefaultEvalCacheMB,
		LogLevel:   zerolog.InfoLevel,
	}
}

// SetDifficulty switches to a preset and its depth.
func (c *Config) SetDifficulty(d Difficulty) error {
	depth, err := DepthFor(d)
	if err != nil {
		return err
	}
	c.Difficulty = d
	c.Depth = depth
	return nil
}

// SetLogLevel parses one of zerolog's level names (debug, info, warn, ...).
func (c *Config) SetLogLevel(s string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	c.LogLevel = lvl
	return nil
}

// Maximizing reports whether the engine's side is the maximizing one.
func (c *Config) Maximizing() bool {
	return c.EngineSide == c4board.Player2
}

// Validate checks the settings are usable together.
func (c *Config) Validate() error {
	if c.Depth < 0 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d outside 0..%d", ErrInvalidConfig, c.Depth, MaxDepth)
	}
	if !c.EngineSide.Valid() {
		return fmt.Errorf("%w: engine side %v", ErrInvalidConfig, c.EngineSide)
	}
	if c.TimeBudget < 0 {
		return fmt.Errorf("%w: negative time budget %v", ErrInvalidConfig, c.TimeBudget)
	}
	if c.EvalCache < 0 {
		return fmt.Errorf("%w: negative eval cache size %d", ErrInvalidConfig, c.EvalCache)
	}
	if c.Difficulty < Easy || c.Difficulty > Insane {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Difficulty)
	}
	return nil
}
