package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/snaker/model"
)

const (
	size = 28
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var COLOR_SNAKE = HexToF32(0x0abd38)
var COLOR_HEAD = HexToF32(0x34fbf6)
var COLOR_FOOD = HexToF32(0xfa3636)
var COLOR_BOARD = HexToF32(0x222222)

var Font font.Face

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke manages the current drag state by mouse or touch.
type Stroke struct {
	source StrokeSource

	initX int
	initY int

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) PositionDiff() (int, int) {
	dx := s.currentX - s.initX
	dy := s.currentY - s.initY
	return dx, dy
}

type GameState int

const (
	WAITING GameState = iota + 1
	PLAY
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case WAITING:
		return "WAITING"
	case PLAY:
		return "PLAY"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	conn     *websocket.Conn
	gridSize int

	State   GameState
	snap    model.Snapshot
	snaps   chan model.Snapshot
	netDown chan struct{}

	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]Action

	tile         *ebiten.Image
	overlayAlpha float64
	labelAlpha   float64
	ScoreLabel   *ebiten.Image
	SpeedLabel   *ebiten.Image
	OverLabel    *ebiten.Image
	lastScore    int
	lastSpeed    float64
}

func NewGame(conn *websocket.Conn, setup model.Setup) *Game {
	tile, _ := ebiten.NewImage(size, size, ebiten.FilterDefault)
	tile.Fill(color.White)
	return &Game{
		conn:       conn,
		gridSize:   setup.GridSize,
		State:      WAITING,
		snaps:      make(chan model.Snapshot, 16),
		netDown:    make(chan struct{}),
		strokes:    map[*Stroke]struct{}{},
		Tweens:     make(map[*gween.Tween]Action),
		tile:       tile,
		ScoreLabel: prepareTextImage("score 0"),
		SpeedLabel: prepareTextImage(speedText(setup.Speed)),
		lastSpeed:  setup.Speed,
	}
}

func prepareTextImage(s string) *ebiten.Image {
	image, _ := ebiten.NewImage(220, 36, ebiten.FilterLinear)
	text.Draw(image, s, Font, 4, 26, color.White)
	return image
}

func speedText(speed float64) string {
	return fmt.Sprintf("speed %.1f", speed)
}

// apply folds one server snapshot into the client state and refreshes the
// labels that changed.
func (g *Game) apply(snap model.Snapshot) {
	if snap.Score != g.lastScore || g.State == WAITING {
		g.lastScore = snap.Score
		g.ScoreLabel = prepareTextImage(fmt.Sprintf("score %d", snap.Score))
	}
	if snap.Speed != g.lastSpeed {
		g.lastSpeed = snap.Speed
		g.SpeedLabel = prepareTextImage(speedText(snap.Speed))
	}
	g.snap = snap
	if snap.Ended {
		if g.State != GAME_OVER {
			g.State = GAME_OVER
			g.OverLabel = prepareTextImage(fmt.Sprintf("game over - %s", snap.Reason.Name()))
			g.overlayAlpha = 0
			g.labelAlpha = 0
			// dim the board first, then fade the label in on top of it
			dim := Action{onChange: func(v float32) {
				g.overlayAlpha = float64(v)
			}}
			fade := dim.next(gween.New(0, 1, 0.3, ease.Linear))
			fade.onChange = func(v float32) {
				g.labelAlpha = float64(v)
			}
			fade.addOnFinish(func() {
				g.labelAlpha = 1
			})
			g.Tweens[gween.New(0, 0.65, 0.5, ease.OutQuad)] = dim
		}
		return
	}
	g.State = PLAY
	g.overlayAlpha = 0
	g.labelAlpha = 0
}

func (g *Game) restart() {
	g.send(model.ClientMessage{Restart: true})
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.send(model.ClientMessage{Move: model.Up})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.send(model.ClientMessage{Move: model.Down})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.send(model.ClientMessage{Move: model.Left})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.send(model.ClientMessage{Move: model.Right})
	}
	if g.State == GAME_OVER && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.restart()
	}
}

// updateStroke turns a finished swipe into a direction request along its
// dominant axis. A short tap restarts after game over.
func (g *Game) updateStroke(stroke *Stroke) {
	stroke.Update()
	if !stroke.IsReleased() {
		return
	}
	xDif, yDif := stroke.PositionDiff()
	if math.Abs(float64(xDif)) < size/2 && math.Abs(float64(yDif)) < size/2 {
		if g.State == GAME_OVER {
			g.restart()
		}
		return
	}
	if math.Abs(float64(xDif)) >= math.Abs(float64(yDif)) {
		if xDif > 0 {
			g.send(model.ClientMessage{Move: model.Right})
		} else {
			g.send(model.ClientMessage{Move: model.Left})
		}
	} else {
		if yDif > 0 {
			g.send(model.ClientMessage{Move: model.Down})
		} else {
			g.send(model.ClientMessage{Move: model.Up})
		}
	}
}

func (g *Game) drawCell(screen *ebiten.Image, c model.Vec, col GameColor, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(.92, .92)
	op.GeoM.Translate(float64(c.X*size), float64(c.Y*size))
	op.ColorM.Scale(col.r, col.g, col.b, alpha)
	screen.DrawImage(g.tile, op)
}

func (g *Game) update(screen *ebiten.Image) error {
	g.stepTweens(0.02)

	// pump the latest snapshots from the reader goroutine
pump:
	for {
		select {
		case snap := <-g.snaps:
			g.apply(snap)
		default:
			break pump
		}
	}
	select {
	case <-g.netDown:
		return fmt.Errorf("connection lost")
	default:
	}

	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s := NewStroke(&MouseStrokeSource{})
		g.strokes[s] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		s := NewStroke(&TouchStrokeSource{id})
		g.strokes[s] = struct{}{}
	}
	for s := range g.strokes {
		g.updateStroke(s)
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	screen.Fill(color.RGBA{
		uint8(COLOR_BOARD.r * 255), uint8(COLOR_BOARD.g * 255), uint8(COLOR_BOARD.b * 255), 255})

	if g.State != WAITING {
		g.drawCell(screen, g.snap.Food, COLOR_FOOD, 1)
		for i, c := range g.snap.Cells {
			col := COLOR_SNAKE
			if i == 0 {
				col = COLOR_HEAD
			}
			g.drawCell(screen, c, col, 1)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 4)
	screen.DrawImage(g.ScoreLabel, op)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 34)
	screen.DrawImage(g.SpeedLabel, op)

	if g.State == GAME_OVER {
		side := float64(g.gridSize * size)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side/size, side/size)
		op.ColorM.Scale(0, 0, 0, g.overlayAlpha)
		screen.DrawImage(g.tile, op)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(side/2-110, side/2-18)
		op.ColorM.Scale(1, 1, 1, g.labelAlpha)
		screen.DrawImage(g.OverLabel, op)
	}

	ebitenutil.DebugPrintAt(screen, g.State.Name(), g.gridSize*size-80, 0)

	return nil
}
