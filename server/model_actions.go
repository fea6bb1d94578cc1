package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snaker/model"
	"github.com/zucenko/snaker/sim"
)

// HandleHttpCall upgrades the connection and binds it to a fresh game
// session, then blocks until the session is over.
func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		gcas := make(chan GameContextAwaiting)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			log.Printf("HandleHttpCall GameContextAwaiting <- code:%d", gca.ResponseCode)
			if gca.ResponseCode != GAME_READY {
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		defer con.Close()

		gs := gca.GameSession
		gs.Run(con)

		// wait till the session dies with the connection
		<-gs.GameOver
	}
}

// Loop serializes session creation. One session per connection, the
// finished ones get swept on the next request.
func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	for gameReq := range s.GameRequests {
		kept := s.GameSessions[:0]
		for _, gs := range s.GameSessions {
			if gs.State != GS_ERR {
				kept = append(kept, gs)
			}
		}
		s.GameSessions = kept

		grid, err := sim.NewGrid(s.Config, nil)
		if err != nil {
			log.Errorf("GameServer.Loop bad config %v", err)
			gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALIDE}
			continue
		}
		gs := &GameSession{
			State:          GS_NEW,
			Driver:         sim.NewDriver(grid, nil),
			GameOver:       make(chan struct{}),
			Events:         make(chan model.ClientMessage),
			Errors:         make(chan struct{}, 1),
			MessagesToSend: make(chan model.ServerMessage, 10),
		}
		s.GameSessions = append(s.GameSessions, gs)
		log.Infof("GameServer.Loop created session, %d live", len(s.GameSessions))

		gameReq.GameContextAwaiting <- GameContextAwaiting{
			ResponseCode: GAME_READY,
			GameSession:  gs,
		}
	}
}

// Run attaches the connection and starts the three session goroutines.
func (gs *GameSession) Run(conn *websocket.Conn) {
	gs.Conn = conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			gs.DebugLastPing = time.Now()
			gs.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	go gs.Loop()
	go gs.LoopChannelRead()
	go gs.LoopChannelWrite()
}

// Loop owns the driver. Snapshots stream out, client messages stream in,
// a read or write error tears the session down.
func (gs *GameSession) Loop() {
	log.Info("GameSession.Loop start")
	cfg := gs.Driver.Grid.Config()
	gs.Driver.Start()
	gs.State = GS_PLAY
	gs.MessagesToSend <- model.ServerMessage{
		Setup: []model.Setup{{GridSize: cfg.GridSize, Speed: cfg.InitialSpeed}},
	}
	for {
		select {
		case snap := <-gs.Driver.Snapshots():
			gs.MessagesToSend <- model.ServerMessage{Snapshots: []model.Snapshot{snap}}
			if snap.Ended {
				log.Infof("GameSession.Loop over, reason:%s score:%d", snap.Reason.Name(), snap.Score)
				gs.State = GS_OVER
			}
		case cm := <-gs.Events:
			if cm.Restart {
				if gs.Driver.State() != sim.DRV_RUNNING {
					log.Info("GameSession.Loop restart")
					gs.Driver.Start()
					gs.State = GS_PLAY
				}
				continue
			}
			gs.Driver.RequestDirection(cm.Move)
		case <-gs.Errors:
			log.Warn("killing GS")
			gs.State = GS_ERR
			gs.Driver.Stop()
			close(gs.GameOver)
			return
		}
	}
}

func (gs *GameSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
loop:
	for {
		messageType, r, err := gs.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			gs.fail()
			break loop
		}
		log.Printf("LoopChannelRead received message type: %d", messageType)
		dec := gob.NewDecoder(r)
		cm := &model.ClientMessage{}
		err = dec.Decode(cm)
		if err != nil {
			log.Warn("cant decode")
			gs.fail()
			break loop
		}
		gs.DebugLastMessage = time.Now()
		gs.DebugInMessages++

		select {
		case gs.Events <- *cm:
		case <-gs.GameOver:
			break loop
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// LoopChannelWrite only consumes, so the session loop never sticks on a
// full buffer for long.
func (gs *GameSession) LoopChannelWrite() {
	log.Printf("GameSession.LoopChannelWrite STARTED")
loop:
	for {
		select {
		case mes := <-gs.MessagesToSend:
			w, err := gs.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("GameSession.LoopChannelWrite cant get writer %v", err)
				gs.fail()
				break loop
			}
			enc := gob.NewEncoder(w)
			err = enc.Encode(mes)
			if err != nil {
				log.Warnf("GameSession.LoopChannelWrite cant encode %v", err)
				gs.fail()
				break loop
			}
			err = w.Close()
			if err != nil {
				log.Warnf("GameSession.LoopChannelWrite cant flush %v", err)
				gs.fail()
				break loop
			}
			gs.DebugOutMessages++
		case <-gs.GameOver:
			break loop
		}
	}
	// Keep discarding whatever the session loop still emits until it has
	// noticed the failure, so it can never stick on a full buffer.
	for {
		select {
		case <-gs.MessagesToSend:
		case <-gs.GameOver:
			log.Printf("LoopChannelWrite ENDED")
			return
		}
	}
}

// fail signals the session loop once; later failures of the other loop are
// a consequence, not news.
func (gs *GameSession) fail() {
	select {
	case gs.Errors <- struct{}{}:
	default:
	}
}
