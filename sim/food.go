package sim

import "github.com/zucenko/snaker/model"

// placeFood draws a uniformly random cell and redraws while it lands on the
// snake, at most FoodRetryBound times. The bound turns a nearly full board
// from a busy-loop hazard into a deterministic terminal signal; the caller
// ends the session when it reports false.
func (g *Grid) placeFood() bool {
	for i := 0; i < g.cfg.FoodRetryBound; i++ {
		c := model.Vec{
			X: g.rng.Intn(g.cfg.GridSize),
			Y: g.rng.Intn(g.cfg.GridSize),
		}
		if g.body.contains(c) {
			continue
		}
		g.food = c
		return true
	}
	return false
}
