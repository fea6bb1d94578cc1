package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/zucenko/snaker/model"
	"github.com/zucenko/snaker/sim"
)

func NewGameServer(cfg model.Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make([]*GameSession, 0),
		GameRequests: make(chan GameRequest),
		Upgrader:     &websocket.Upgrader{},
	}
}

type GameServer struct {
	Config       model.Config
	GameSessions []*GameSession
	GameRequests chan GameRequest
	Upgrader     *websocket.Upgrader
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_OVER
	GS_ERR
)

// GameSession is one connection playing one snake. The session loop is the
// only goroutine talking to the driver; the read loop feeds it through
// Events.
type GameSession struct {
	State    GameSessionState
	Driver   *sim.Driver
	Conn     *websocket.Conn
	GameOver chan struct{}

	Events         chan model.ClientMessage
	Errors         chan struct{}
	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
