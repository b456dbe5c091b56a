package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/hoops/internal/input"
	"github.com/tomz197/hoops/internal/loop/config"
	"github.com/tomz197/hoops/internal/object"
	"github.com/tomz197/hoops/internal/physics"
	"github.com/tomz197/hoops/internal/score"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active session
	GameStateOver                     // End scene, scoreboard shown
)

// Game holds everything the loop simulates.
type Game struct {
	State   GameState
	Running bool

	Tracker *score.Tracker
	Scenes  *Director
	Hoop    *object.Hoop
	Ball    *object.Ball
	Player  *object.Player
	Body    physics.Body
	Trigger *Trigger
	Banner  Banner

	Court      physics.Bounds
	Projection object.Projection

	logger  *log.Logger
	toggle  input.Toggle
	hold    input.Hold
	loose   bool    // Body owns the ball position
	elapsed float64 // Seconds since the game started
}

// NewGame builds a game on the first level, showing the title screen.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	store := opts.Store
	if store == nil {
		store = score.NewDirStore(score.DefaultDataDir)
	}

	court := physics.Bounds{MaxX: config.CourtWidth, MaxZ: config.CourtDepth}
	scenes := NewDirector(Levels, logger.WithPrefix("scenes"))
	tracker := score.NewTracker(store, scenes, logger.WithPrefix("score"), score.Options{
		MaxTime:     opts.MaxTime,
		TargetScore: opts.TargetScore,
	})

	first := scenes.Current()
	hoop := object.NewHoop(first.Rim, first.Base)
	ball := object.NewBall(first.Spawn)

	return &Game{
		State:   GameStateStart,
		Running: true,
		Tracker: tracker,
		Scenes:  scenes,
		Hoop:    hoop,
		Ball:    ball,
		Player:  object.NewPlayer(first.Spawn, ball, hoop, tracker),
		Body: physics.Body{
			Radius:      object.BallRadius,
			Gravity:     config.BallGravity,
			Restitution: config.BallRestitution,
			Friction:    config.BallFriction,
		},
		Trigger: NewTrigger(court),
		Court:   court,
		Projection: object.Projection{
			ScaleX:      config.ScaleX,
			Horizon:     config.Horizon,
			DepthScale:  config.DepthScale,
			HeightScale: config.HeightScale,
		},
		logger: logger,
	}
}

// Step advances the game by one frame.
func (g *Game) Step(delta time.Duration, in input.Input) error {
	if in.Quit {
		g.Running = false
		return nil
	}

	if l, ok := g.Scenes.Apply(); ok {
		g.enter(l)
	}

	dt := delta.Seconds()
	g.elapsed += dt
	g.Banner.Update(dt)

	switch g.State {
	case GameStateStart:
		if in.Space || in.Enter {
			g.startSession()
		}
	case GameStatePlaying:
		return g.play(delta, in)
	case GameStateOver:
		if in.Enter {
			g.startSession()
		}
	}
	return nil
}

// startSession resets the score and requests the first level.
func (g *Game) startSession() {
	g.Tracker.StartSession()
	g.Scenes.LoadByIndex(0)
	g.State = GameStatePlaying
}

// enter resets the court for a freshly loaded scene. The tracker survives.
func (g *Game) enter(l Layout) {
	g.toggle.Reset()
	g.hold.Reset()
	g.Trigger.Reset()
	g.loose = false

	if l.End {
		g.State = GameStateOver
		g.Banner.Hide()
		return
	}

	g.Hoop.Rim, g.Hoop.Base = l.Rim, l.Base
	g.Player.Respawn(l.Spawn, g.Hoop)
	g.Banner.Show(fmt.Sprintf("%s  -  reach %d", l.Name, g.Tracker.TargetScore()))
}

func (g *Game) play(delta time.Duration, in input.Input) error {
	if g.Ball.Possession() != object.InHands {
		g.toggle.Reset()
	}
	hold := g.hold.Next(g.toggle.Tap(in.Space))

	ctx := object.UpdateContext{
		Delta:   delta,
		Elapsed: g.elapsed,
		Input:   in,
		Hold:    hold,
		Court:   g.Court,
	}
	if _, err := g.Player.Update(ctx); err != nil {
		return err
	}
	g.stepBall(delta.Seconds())

	if g.Trigger.Update(g.Player.Position, g.Ball.Position) {
		caught, err := g.Player.OnTriggerEnter()
		if err != nil {
			g.logger.Warn("high score not saved", "err", err)
		}
		if caught {
			g.loose = false
			g.logger.Debug("ball caught", "score", g.Tracker.Score())
		}
	}

	if err := g.Tracker.Tick(delta); err != nil {
		g.logger.Warn("high scores not saved", "err", err)
	}
	return nil
}

// stepBall hands a ball that just finished its flight to the body and
// moves a loose ball with it.
func (g *Game) stepBall(dt float64) {
	if g.Ball.Kinematic() {
		g.loose = false
		return
	}
	if !g.loose {
		g.Body.Reset(g.Ball.Position)
		g.loose = true
		return
	}
	if g.Body.Resting() {
		return
	}
	g.Body.Step(dt, g.Court)
	g.Ball.Position = g.Body.Position
	if g.Body.Resting() {
		g.logger.Debug("ball settled", "x", g.Ball.Position.X, "z", g.Ball.Position.Z)
	}
}
