// Package score tracks the session score, level progression, the countdown
// timer and the persisted high score tables.
package score

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Scoring rules.
const (
	DefaultTargetScore = 3
	DefaultMaxTime     = 10 * time.Second
	TargetGrowth       = 2.5 // Target multiplier applied on each level-up
	TopScoreCount      = 5
	EndScene           = "EndScene"

	HighScoreKey = "hs"
	TopScoresKey = "highScores"
)

// SceneLoader switches the active scene. Requests are fire-and-forget.
type SceneLoader interface {
	LoadByName(name string)
	LoadByIndex(index int)
	ActiveIndex() int
}

// Options configure a Tracker. Zero values select the defaults.
type Options struct {
	MaxTime     time.Duration
	TargetScore int
}

// Tracker is the single score authority of a run.
type Tracker struct {
	store  Store
	scenes SceneLoader
	logger *log.Logger

	maxTime       time.Duration
	initialTarget int

	score       int
	highScore   int
	level       int
	targetScore int
	timer       float64
	gameOver    bool
	topScores   []int
}

// NewTracker creates a tracker. Call StartSession before the first frame.
func NewTracker(store Store, scenes SceneLoader, logger *log.Logger, opts Options) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.MaxTime <= 0 {
		opts.MaxTime = DefaultMaxTime
	}
	if opts.TargetScore <= 0 {
		opts.TargetScore = DefaultTargetScore
	}

	return &Tracker{
		store:         store,
		scenes:        scenes,
		logger:        logger,
		maxTime:       opts.MaxTime,
		initialTarget: opts.TargetScore,
		targetScore:   opts.TargetScore,
		level:         1,
		topScores:     slices.Clone(DefaultHighScores),
	}
}

// StartSession resets the session counters and loads the persisted scores.
func (t *Tracker) StartSession() {
	t.score = 0
	t.level = 1
	t.targetScore = t.initialTarget
	t.timer = 0
	t.gameOver = false
	t.Load()

	t.logger.Info("session started",
		"highScore", t.highScore,
		"maxTime", t.maxTime,
		"target", t.targetScore,
	)
}

// Load reads the high score and the top list from the store. Missing or
// unreadable items fall back to the defaults.
func (t *Tracker) Load() {
	t.highScore = t.loadHighScore()
	t.topScores = t.loadTopScores()
}

func (t *Tracker) loadHighScore() int {
	data, err := t.store.Load(HighScoreKey)
	if errors.Is(err, ErrNotFound) {
		return 0
	}
	if err != nil {
		t.logger.Warn("high score unavailable", "err", err)
		return 0
	}

	n, err := ParseHighScore(data)
	if err != nil {
		t.logger.Warn("ignoring high score", "err", err)
		return 0
	}
	return n
}

func (t *Tracker) loadTopScores() []int {
	data, err := t.store.Load(TopScoresKey)
	if errors.Is(err, ErrNotFound) {
		return slices.Clone(DefaultHighScores)
	}
	if err != nil {
		t.logger.Warn("high scores unavailable", "err", err)
		return slices.Clone(DefaultHighScores)
	}

	scores, err := ParseScores(data)
	if err != nil {
		t.logger.Warn("ignoring high scores", "err", err)
		return slices.Clone(DefaultHighScores)
	}
	if len(scores) > TopScoreCount {
		scores = scores[:TopScoreCount]
	}
	return scores
}

// RecordBasket adds one point. A new high score is persisted immediately;
// the point is counted even if saving fails.
func (t *Tracker) RecordBasket() error {
	t.score++
	t.logger.Info("score changed", "score", t.score, "level", t.level)

	if t.score <= t.highScore {
		return nil
	}

	t.highScore = t.score
	t.logger.Info("new high score", "highScore", t.highScore)
	if err := t.store.Save(HighScoreKey, FormatHighScore(t.highScore)); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Tick advances the session timer by dt. It ends the game when the time
// runs out and levels up when the score reaches the target exactly.
func (t *Tracker) Tick(dt time.Duration) error {
	t.timer += dt.Seconds()

	var err error
	if t.timer >= t.maxTime.Seconds() && !t.gameOver {
		t.gameOver = true
		t.logger.Info("game over", "score", t.score, "level", t.level)
		if t.scenes != nil {
			t.scenes.LoadByName(EndScene)
		}
		err = t.CommitSessionHighScores()
	}

	if t.score == t.targetScore {
		t.level++
		if t.scenes != nil {
			t.scenes.LoadByIndex(t.scenes.ActiveIndex() + 1)
		}
		t.targetScore = nextTarget(t.targetScore)
		t.logger.Info("level up", "level", t.level, "target", t.targetScore)
	}

	return err
}

// nextTarget grows the target, rounding halves to the even neighbour.
func nextTarget(target int) int {
	return int(math.RoundToEven(float64(target) * TargetGrowth))
}

// CommitSessionHighScores inserts the session score into the top list if it
// beats an entry and persists the result.
func (t *Tracker) CommitSessionHighScores() error {
	scores, ok := InsertScore(t.topScores, t.score, TopScoreCount)
	if !ok {
		return nil
	}

	t.topScores = scores
	t.logger.Info("high scores updated", "scores", scores)
	if err := t.store.Save(TopScoresKey, FormatScores(scores)); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

// Score returns the session score.
func (t *Tracker) Score() int { return t.score }

// HighScore returns the best score ever recorded.
func (t *Tracker) HighScore() int { return t.highScore }

// HighScores returns a copy of the top list, best first.
func (t *Tracker) HighScores() []int { return slices.Clone(t.topScores) }

// Level returns the current level, starting at 1.
func (t *Tracker) Level() int { return t.level }

// TargetScore returns the score that triggers the next level-up.
func (t *Tracker) TargetScore() int { return t.targetScore }

// GameOver reports whether the session time ran out.
func (t *Tracker) GameOver() bool { return t.gameOver }

// Elapsed returns the session time in seconds.
func (t *Tracker) Elapsed() float64 { return t.timer }

// Remaining returns the whole seconds left on the countdown.
func (t *Tracker) Remaining() int {
	return int(t.maxTime.Seconds()) - int(t.timer)
}

// Status renders the text shown on the status display.
func (t *Tracker) Status() string {
	var b strings.Builder
	if t.gameOver {
		b.WriteString("GAME OVER\nFINAL SCORE: ")
		b.WriteString(strconv.Itoa(t.score))
		b.WriteString("\nHigh Scores:\n")
		for _, s := range t.topScores {
			b.WriteString(strconv.Itoa(s))
			b.WriteByte('\n')
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Level: %d\nScore: %d\nHigh Score: %d\nTime:%d",
		t.level, t.score, t.highScore, t.Remaining())
	return b.String()
}
