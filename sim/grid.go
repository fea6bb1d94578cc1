package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/zucenko/snaker/model"
)

// Grid owns the whole simulation state of one session: snake body, current
// and queued direction, food, score, speed and pending growth. It has no
// display or transport dependency; collaborators see it only through
// Snapshot values.
type Grid struct {
	cfg model.Config
	rng *rand.Rand

	body          body
	current       model.Vec
	queued        model.Vec
	food          model.Vec
	score         int
	speed         float64
	pendingGrowth int
	running       bool
	reason        model.EndReason
}

// NewGrid validates cfg, seeds a fresh session and returns the grid. A nil
// rng gets a time-seeded one; tests pass their own for determinism.
func NewGrid(cfg model.Config, rng *rand.Rand) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Grid{cfg: cfg, rng: rng}
	g.Reset()
	return g, nil
}

// Reset is the only place session state is reinitialized. The snake starts
// as head plus one neck cell in the middle of the board, heading right.
func (g *Grid) Reset() {
	mid := g.cfg.GridSize / 2
	g.body.reset(model.Vec{X: mid, Y: mid}, model.Vec{X: mid - 1, Y: mid})
	g.current = model.Right
	g.queued = model.Right
	g.score = 0
	g.speed = g.cfg.InitialSpeed
	g.pendingGrowth = 0
	g.reason = model.END_NONE
	g.running = true
	if !g.placeFood() {
		g.end(model.END_BOARD_FULL)
	}
}

// RequestDirection queues operator intent for the next tick. Non-unit
// vectors and reversals into the neck are silently ignored, that is normal
// gameplay friction, not an error. May be called any number of times
// between ticks; the last legal value wins.
func (g *Grid) RequestDirection(v model.Vec) {
	if !v.IsUnit() {
		return
	}
	if g.body.length() > 1 && g.body.head().Add(v) == g.body.neck() {
		return
	}
	g.queued = v
}

// Advance runs one tick. No-op once the session has ended.
func (g *Grid) Advance() model.Snapshot {
	if !g.running {
		return g.Snapshot()
	}

	// Commit the queued direction, re-checked against the neck so a stale
	// queued value from before a reset cannot turn the snake onto itself.
	if g.body.length() > 1 && g.body.head().Add(g.queued) == g.body.neck() {
		g.queued = g.current
	} else {
		g.current = g.queued
	}

	newHead := g.body.head().Add(g.current)

	if newHead.X < 0 || newHead.X >= g.cfg.GridSize ||
		newHead.Y < 0 || newHead.Y >= g.cfg.GridSize {
		g.end(model.END_WALL)
		return g.Snapshot()
	}

	// Collision is checked against the pre-pop body: the tail cell counts
	// as occupied even when this tick would vacate it.
	if g.body.contains(newHead) {
		g.end(model.END_SELF)
		return g.Snapshot()
	}

	g.body.pushFront(newHead)

	if newHead == g.food {
		g.score++
		g.pendingGrowth++
		g.speed = math.Min(g.cfg.MaxSpeed, g.speed+g.cfg.SpeedIncrement)
		if !g.placeFood() {
			// Tail stays put, the growth just earned is kept in the final
			// snapshot.
			g.end(model.END_BOARD_FULL)
			return g.Snapshot()
		}
	}

	if g.pendingGrowth > 0 {
		g.pendingGrowth--
	} else {
		g.body.popBack()
	}

	return g.Snapshot()
}

func (g *Grid) end(r model.EndReason) {
	g.running = false
	g.reason = r
}

func (g *Grid) Snapshot() model.Snapshot {
	return model.Snapshot{
		Cells:  g.body.snapshot(),
		Food:   g.food,
		Score:  g.score,
		Speed:  g.speed,
		Ended:  !g.running,
		Reason: g.reason,
	}
}

func (g *Grid) Running() bool {
	return g.running
}

func (g *Grid) Speed() float64 {
	return g.speed
}

func (g *Grid) Config() model.Config {
	return g.cfg
}
