package sim

import "github.com/zucenko/snaker/model"

// body is the snake's cell sequence, head first. pushFront and popBack are
// the only two mutations; everything else is read-only.
type body struct {
	cells []model.Vec
}

func (b *body) reset(cells ...model.Vec) {
	b.cells = append(b.cells[:0], cells...)
}

func (b *body) pushFront(c model.Vec) {
	b.cells = append(b.cells, model.Vec{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = c
}

func (b *body) popBack() model.Vec {
	last := b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	return last
}

func (b *body) head() model.Vec {
	return b.cells[0]
}

func (b *body) neck() model.Vec {
	return b.cells[1]
}

func (b *body) length() int {
	return len(b.cells)
}

func (b *body) contains(c model.Vec) bool {
	for _, cell := range b.cells {
		if cell == c {
			return true
		}
	}
	return false
}

func (b *body) snapshot() []model.Vec {
	out := make([]model.Vec, len(b.cells))
	copy(out, b.cells)
	return out
}
