package model

type ServerMessage struct {
	Setup     []Setup
	Snapshots []Snapshot
}

type Setup struct {
	GridSize int
	Speed    float64
}

type ClientMessage struct {
	Move    Vec
	Restart bool
}
