package model

// Vec is an integer pair used both for grid cells and for the four unit
// direction vectors.
type Vec struct {
	X, Y int
}

var (
	Up    = Vec{X: 0, Y: -1}
	Down  = Vec{X: 0, Y: 1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Opposite() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// IsUnit reports whether v is one of the four legal direction vectors.
func (v Vec) IsUnit() bool {
	return (v.X == 0 || v.Y == 0) && v.X*v.X+v.Y*v.Y == 1
}

type EndReason int32

const (
	END_NONE EndReason = iota
	END_WALL
	END_SELF
	END_BOARD_FULL
)

func (r EndReason) Name() string {
	switch r {
	case END_NONE:
		return "NONE"
	case END_WALL:
		return "WALL_COLLISION"
	case END_SELF:
		return "SELF_COLLISION"
	case END_BOARD_FULL:
		return "BOARD_FULL"
	default:
		return "N/A"
	}
}

// Snapshot is the immutable per-tick view handed to collaborators. Cells is
// ordered head first.
type Snapshot struct {
	Cells  []Vec
	Food   Vec
	Score  int
	Speed  float64
	Ended  bool
	Reason EndReason
}

func (s Snapshot) Head() Vec {
	return s.Cells[0]
}
