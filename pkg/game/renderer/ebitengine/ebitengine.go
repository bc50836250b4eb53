// Package ebitengine is the graphical front end, drawing the maze as colored
// tiles in an Ebiten window. Unlike the TUI it owns the loop: Ebiten calls
// Update and Draw, so Run blocks until the window closes.
package ebitengine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"robotmaze/pkg/engine/input"
	"robotmaze/pkg/engine/world"
	"robotmaze/pkg/game/state"
)

const (
	tileSize    = 32
	panelHeight = 40
)

// Tile colors per occupant kind.
var (
	colorFloor    = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	colorWall     = color.RGBA{R: 0x60, G: 0x60, B: 0x68, A: 0xff}
	colorFood     = color.RGBA{R: 0xc8, G: 0xa0, B: 0x20, A: 0xff}
	colorTeleport = color.RGBA{R: 0x20, G: 0x90, B: 0xa0, A: 0xff}
	colorGoal     = color.RGBA{R: 0x90, G: 0x20, B: 0x90, A: 0xff}
	colorRobot    = color.RGBA{R: 0x20, G: 0xa0, B: 0x30, A: 0xff}
	colorPanel    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
)

// Frontend implements ebiten.Game around one session.
type Frontend struct {
	session *state.Session
	rows    int
	cols    int
}

// Run opens the window and blocks until the player quits.
func Run(s *state.Session) error {
	f := &Frontend{session: s}
	f.rows, f.cols = s.Grid.Extent()

	ebiten.SetWindowSize(f.cols*tileSize, f.rows*tileSize+panelHeight)
	ebiten.SetWindowTitle("Robot Maze")

	return ebiten.RunGame(f)
}

// Update handles input (Ebiten interface)
func (f *Frontend) Update() error {
	code := pressedCode()
	if code == "" {
		return nil
	}

	raw := input.RawInput{Device: input.DeviceKeyboard, Code: code}
	intent := input.MapToIntent(input.NewDebouncedInput(raw))

	switch intent.Action {
	case input.ActionQuit:
		return ebiten.Termination
	case input.ActionReset:
		f.session.Reset()
	default:
		if dir, ok := input.DirectionFor(intent.Action); ok {
			outcome := f.session.Step(dir)
			f.session.AddMessage(fmt.Sprintf("%v: %v", dir, outcome))
		}
	}

	return nil
}

// pressedCode translates this frame's key edge into an engine input code.
// Codes are the same ones the terminal layer emits, so both front ends share
// one binding table.
func pressedCode() string {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return "arrow_up"
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return "arrow_down"
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return "arrow_left"
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return "arrow_right"
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		return "n"
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		return "s"
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		return "e"
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		return "w"
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return "r"
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		return "f5"
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return "q"
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return "escape"
	}
	return ""
}

// tileColor picks the fill color for one room.
func tileColor(room *world.Room) color.RGBA {
	switch room.Occupant.Kind {
	case world.Wall, world.Edge:
		return colorWall
	case world.Food:
		return colorFood
	case world.Teleport:
		return colorTeleport
	case world.EndGame:
		return colorGoal
	default:
		return colorFloor
	}
}

// Draw renders the maze and the status panel (Ebiten interface)
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.session.Grid.ForEachRoom(func(c world.Coord, room *world.Room) {
		x := float32(c.Col * tileSize)
		y := float32(c.Row * tileSize)

		fill := tileColor(room)
		if f.session.Robot.Room == room {
			fill = colorRobot
		}
		vector.DrawFilledRect(screen, x, y, tileSize, tileSize, fill, false)

		symbol := room.Occupant.Symbol()
		if f.session.Robot.Room == room {
			symbol = world.SymbolRobot
		}
		if symbol != world.SymbolEmpty {
			ebitenutil.DebugPrintAt(screen, string(symbol), c.Col*tileSize+tileSize/2-3, c.Row*tileSize+tileSize/2-8)
		}
	})

	// Status panel below the maze
	panelY := float32(f.rows * tileSize)
	vector.DrawFilledRect(screen, 0, panelY, float32(f.cols*tileSize), panelHeight, colorPanel, false)

	status := fmt.Sprintf("moves %d   food %d   rooms %d", f.session.Moves, f.session.FoodEaten, f.session.VisitedRooms())
	if f.session.Finished {
		status += "   FINISHED"
	}
	ebitenutil.DebugPrintAt(screen, status, 6, f.rows*tileSize+6)

	if n := len(f.session.Messages); n > 0 {
		ebitenutil.DebugPrintAt(screen, f.session.Messages[n-1], 6, f.rows*tileSize+22)
	}
}

// Layout returns the logical screen size (Ebiten interface)
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.cols * tileSize, f.rows*tileSize + panelHeight
}
