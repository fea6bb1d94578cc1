package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/snaker/model"
)

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	g := newTestGrid(t, testConfig(), 3)
	for i := 0; i < 1000; i++ {
		require.True(t, g.placeFood())
		assert.False(t, g.body.contains(g.food), "food %v on snake", g.food)
	}
}

// Scenario E: a single free cell is still found within the retry bound.
func TestPlaceFoodSingleFreeCell(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 3
	g := newTestGrid(t, cfg, 5)

	cells := make([]model.Vec, 0, 8)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 2 {
				continue
			}
			cells = append(cells, model.Vec{X: x, Y: y})
		}
	}
	g.body.reset(cells...)

	require.True(t, g.placeFood())
	assert.Equal(t, model.Vec{X: 2, Y: 2}, g.food)
}

func TestPlaceFoodBoardFull(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 3
	cfg.FoodRetryBound = 50
	g := newTestGrid(t, cfg, 5)

	cells := make([]model.Vec, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cells = append(cells, model.Vec{X: x, Y: y})
		}
	}
	g.body.reset(cells...)

	assert.False(t, g.placeFood())
}

// Eating the food on a board with no free cell left ends the session with
// BOARD_FULL; the growth from that last food is kept in the final snapshot.
func TestAdvanceBoardFull(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 3
	g, err := NewGrid(cfg, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	// body fills everything except (2,1); head at (1,1) about to move there.
	// Only occupancy matters to the collision and placement checks, so the
	// cells are laid out directly.
	g.body.reset(
		model.Vec{X: 1, Y: 1},
		model.Vec{X: 0, Y: 1},
		model.Vec{X: 0, Y: 0},
		model.Vec{X: 1, Y: 0},
		model.Vec{X: 2, Y: 0},
		model.Vec{X: 2, Y: 2},
		model.Vec{X: 1, Y: 2},
		model.Vec{X: 0, Y: 2},
	)
	g.current = model.Right
	g.queued = model.Right
	g.food = model.Vec{X: 2, Y: 1}

	snap := g.Advance()
	require.True(t, snap.Ended)
	assert.Equal(t, model.END_BOARD_FULL, snap.Reason)
	assert.Equal(t, 1, snap.Score)
	assert.Len(t, snap.Cells, 9)
}
