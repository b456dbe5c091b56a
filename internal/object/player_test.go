package object

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/hoops/internal/input"
	"github.com/tomz197/hoops/internal/physics"
)

type countingScorer struct {
	baskets int
	err     error
}

func (s *countingScorer) RecordBasket() error {
	s.baskets++
	return s.err
}

var testCourt = physics.Bounds{MinX: 0, MaxX: 60, MinZ: 0, MaxZ: 30}

func newTestPlayer(scorer Scorer) *Player {
	hoop := NewHoop(physics.Vec3{X: 50, Y: 10, Z: 15}, physics.Vec3{X: 53, Z: 15})
	return NewPlayer(physics.Vec3{X: 10, Z: 15}, NewBall(physics.Vec3{}), hoop, scorer)
}

func ctxWith(in input.Input, hold input.HoldState, dt time.Duration) UpdateContext {
	return UpdateContext{Delta: dt, Input: in, Hold: hold, Court: testCourt}
}

func TestPlayerMovesWithNormalizedAxis(t *testing.T) {
	p := newTestPlayer(nil)

	_, err := p.Update(ctxWith(input.Input{Right: true, Down: true}, input.HoldState{}, time.Second))
	require.NoError(t, err)

	step := MoveSpeed / math.Sqrt2
	assert.InDelta(t, 10+step, p.Position.X, 1e-9)
	assert.InDelta(t, 15+step, p.Position.Z, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, p.Facing.X, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, p.Facing.Z, 1e-9)
}

func TestPlayerKeepsFacingWhenIdle(t *testing.T) {
	p := newTestPlayer(nil)
	p.Update(ctxWith(input.Input{Left: true}, input.HoldState{}, 100*time.Millisecond))
	require.Equal(t, physics.Vec3{X: -1}, p.Facing)

	p.Update(ctxWith(input.Input{}, input.HoldState{}, 100*time.Millisecond))
	assert.Equal(t, physics.Vec3{X: -1}, p.Facing)
}

func TestPlayerStaysOnCourt(t *testing.T) {
	p := newTestPlayer(nil)
	p.Update(ctxWith(input.Input{Up: true}, input.HoldState{}, 10*time.Second))
	assert.Equal(t, 0.0, p.Position.Z)
}

func TestAimingLocksFacingTowardHoopBase(t *testing.T) {
	p := newTestPlayer(nil)

	// Moving away while aiming does not turn the player.
	p.Update(ctxWith(input.Input{Left: true}, input.HoldState{Pressed: true, Held: true}, 16*time.Millisecond))

	assert.True(t, p.Aiming())
	assert.InDelta(t, 1, p.Facing.X, 1e-9)
	assert.InDelta(t, 0, p.Facing.Z, 1e-9)
	assert.Equal(t, p.Anchors().Overhead, p.Ball.Position)
}

func TestThrowTargetsHoopRim(t *testing.T) {
	p := newTestPlayer(nil)
	p.Update(ctxWith(input.Input{}, input.HoldState{Held: true}, 16*time.Millisecond))
	p.Update(ctxWith(input.Input{}, input.HoldState{Released: true}, 16*time.Millisecond))
	require.Equal(t, Flying, p.Ball.Possession())

	p.Update(ctxWith(input.Input{}, input.HoldState{}, time.Second))
	assert.Equal(t, Loose, p.Ball.Possession())
	assertVecInDelta(t, p.hoop.Rim, p.Ball.Position)
}

func TestTriggerEnterScoresOnlyLooseBall(t *testing.T) {
	scorer := &countingScorer{}
	p := newTestPlayer(scorer)

	caught, err := p.OnTriggerEnter()
	require.NoError(t, err)
	assert.False(t, caught)
	assert.Equal(t, 0, scorer.baskets)

	p.Update(ctxWith(input.Input{}, input.HoldState{Released: true}, 16*time.Millisecond))
	caught, _ = p.OnTriggerEnter()
	assert.False(t, caught, "flying ball is not caught")

	p.Update(ctxWith(input.Input{}, input.HoldState{}, time.Second))
	caught, err = p.OnTriggerEnter()
	require.NoError(t, err)
	assert.True(t, caught)
	assert.Equal(t, 1, scorer.baskets)
	assert.Equal(t, InHands, p.Ball.Possession())
}

func TestTriggerEnterReturnsScorerError(t *testing.T) {
	scorer := &countingScorer{err: errors.New("disk full")}
	p := newTestPlayer(scorer)
	p.Update(ctxWith(input.Input{}, input.HoldState{Released: true}, time.Second))

	caught, err := p.OnTriggerEnter()
	assert.True(t, caught)
	assert.EqualError(t, err, "disk full")
}

func TestRespawnResetsBall(t *testing.T) {
	p := newTestPlayer(nil)
	p.Update(ctxWith(input.Input{}, input.HoldState{Released: true}, 16*time.Millisecond))
	require.Equal(t, Flying, p.Ball.Possession())

	hoop := NewHoop(physics.Vec3{X: 8, Y: 9, Z: 10}, physics.Vec3{X: 5, Z: 10})
	p.Respawn(physics.Vec3{X: 30, Z: 20}, hoop)

	assert.Equal(t, InHands, p.Ball.Possession())
	assert.Equal(t, physics.Vec3{X: 30, Z: 20}, p.Position)
	assert.Equal(t, hoop.Rim, p.Anchors().Target)
}
