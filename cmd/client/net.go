package main

import (
	"encoding/gob"
	"fmt"
	"log"

	"github.com/gorilla/websocket"

	"github.com/zucenko/snaker/model"
)

// readSetup blocks for the first server message, which must carry the board
// setup. Everything after that is snapshots.
func readSetup(conn *websocket.Conn) (model.Setup, error) {
	_, r, err := conn.NextReader()
	if err != nil {
		return model.Setup{}, err
	}
	sm := &model.ServerMessage{}
	if err := gob.NewDecoder(r).Decode(sm); err != nil {
		return model.Setup{}, err
	}
	if len(sm.Setup) == 0 {
		return model.Setup{}, fmt.Errorf("expected setup, got %+v", sm)
	}
	return sm.Setup[0], nil
}

// readLoop pushes every received snapshot into the game's channel. Runs
// until the connection dies.
func (g *Game) readLoop() {
	for {
		_, r, err := g.conn.NextReader()
		if err != nil {
			log.Printf("readLoop err %v", err)
			close(g.netDown)
			return
		}
		sm := &model.ServerMessage{}
		if err := gob.NewDecoder(r).Decode(sm); err != nil {
			log.Printf("readLoop cant decode %v", err)
			close(g.netDown)
			return
		}
		for _, snap := range sm.Snapshots {
			g.snaps <- snap
		}
	}
}

// send writes one client message. Only ever called from the update loop, so
// the writer needs no locking.
func (g *Game) send(cm model.ClientMessage) {
	w, err := g.conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		log.Printf("send cant get writer %v", err)
		return
	}
	if err := gob.NewEncoder(w).Encode(cm); err != nil {
		log.Printf("send cant encode %v", err)
		return
	}
	if err := w.Close(); err != nil {
		log.Printf("send cant flush %v", err)
	}
}
