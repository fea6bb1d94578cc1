package main

import (
	"flag"
	"log"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten"
)

var addr = flag.String("addr", "localhost:8080", "server host:port")

func main() {
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+*addr+"/play", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	setup, err := readSetup(conn)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("joined, grid %dx%d", setup.GridSize, setup.GridSize)

	game := NewGame(conn, setup)
	go game.readLoop()

	side := setup.GridSize * size
	if err := ebiten.Run(game.update, side, side, 1, "Snaker"); err != nil {
		log.Fatal(err)
	}
}
