package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Coord addresses one grid cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Grid maps coordinates to rooms. Rooms are kept in the row-major scan order
// of the maze text so rendering and teleport pairing stay deterministic.
type Grid struct {
	rooms  map[Coord]*Room
	coords []Coord

	start     *Room
	teleports []*Room
}

// BuildGrid constructs a grid from maze text: one line per row, one symbol
// per cell. The build runs in strict phases; each depends on the previous.
func BuildGrid(maze string) *Grid {
	g := &Grid{rooms: make(map[Coord]*Room)}

	// Phase 1: placement. The robot marker is consumed into the start
	// position and its cell becomes empty; the first marker in scan order
	// wins.
	for row, line := range strings.Split(maze, "\n") {
		col := 0
		for _, symbol := range line {
			item := NewItem(symbol)
			isStart := item.Kind == RobotMarker
			if isStart {
				item = emptyItem
			}

			room := NewRoom(row, col, item)
			key := Coord{Row: row, Col: col}
			g.rooms[key] = room
			g.coords = append(g.coords, key)

			if isStart && g.start == nil {
				g.start = room
			}
			if item.Kind == Teleport {
				g.teleports = append(g.teleports, room)
			}
			col++
		}
	}

	// Phase 2: link every room against the now-complete grid.
	for _, key := range g.coords {
		g.rooms[key].Doors.Connect(key.Row, key.Col, g)
	}

	// Phase 3: teleport pairing. A stable sort keeps same-label rooms in
	// scan order, so first-found pairs with second-found and so on. An odd
	// count leaves the final endpoint unpaired.
	sort.SliceStable(g.teleports, func(i, j int) bool {
		return g.teleports[i].Occupant.label < g.teleports[j].Occupant.label
	})
	for i := 0; i+1 < len(g.teleports); i += 2 {
		a, b := g.teleports[i], g.teleports[i+1]
		a.Occupant.pair = b
		b.Occupant.pair = a
	}

	return g
}

// StartRoom returns the room recorded for the robot marker, or the edge
// sentinel when the maze had none (the robot starts nowhere).
func (g *Grid) StartRoom() *Room {
	if g.start == nil {
		return edgeSentinel
	}
	return g.start
}

// Room returns the room at (row, col). Coordinates not present in the grid
// resolve to the edge sentinel, never to nil.
func (g *Grid) Room(row, col int) *Room {
	return g.roomOrEdge(row, col)
}

func (g *Grid) roomOrEdge(row, col int) *Room {
	if r, ok := g.rooms[Coord{Row: row, Col: col}]; ok {
		return r
	}
	return edgeSentinel
}

// Size returns the number of rooms in the grid.
func (g *Grid) Size() int {
	return len(g.rooms)
}

// Extent returns the number of rows and columns spanned by the grid.
func (g *Grid) Extent() (rows, cols int) {
	for _, key := range g.coords {
		if key.Row+1 > rows {
			rows = key.Row + 1
		}
		if key.Col+1 > cols {
			cols = key.Col + 1
		}
	}
	return rows, cols
}

// Teleports returns the teleport rooms in pairing order.
func (g *Grid) Teleports() []*Room {
	return g.teleports
}

// Labels returns the distinct teleport labels present in the grid, in
// first-seen order.
func (g *Grid) Labels() []rune {
	seen := mapset.New[rune]()
	var labels []rune
	for _, room := range g.teleports {
		l := room.Occupant.label
		if !seen.Has(l) {
			seen.Put(l)
			labels = append(labels, l)
		}
	}
	return labels
}

// UnpairedTeleports returns teleport rooms left without a destination. A
// well-formed maze has none.
func (g *Grid) UnpairedTeleports() []*Room {
	var unpaired []*Room
	for _, room := range g.teleports {
		if room.Occupant.pair == nil {
			unpaired = append(unpaired, room)
		}
	}
	return unpaired
}

// ForEachRoom walks the rooms in row-major scan order.
func (g *Grid) ForEachRoom(fn func(c Coord, room *Room)) {
	for _, key := range g.coords {
		fn(key, g.rooms[key])
	}
}

// Snapshot renders the grid row-major, one symbol per cell, overlaying the
// robot's symbol on its current room. This is a read-only projection.
func (g *Grid) Snapshot(robot *Robot) string {
	var b strings.Builder
	currentRow := 0
	for _, key := range g.coords {
		for key.Row > currentRow {
			b.WriteByte('\n')
			currentRow++
		}
		room := g.rooms[key]
		if robot != nil && robot.Room == room {
			b.WriteRune(SymbolRobot)
		} else {
			b.WriteRune(room.Occupant.Symbol())
		}
	}
	return b.String()
}

// RoomReport describes one room and its door links, for example
// "(1, 6) Room(.) [N(.), S(#), E(.), W(#)]".
func (g *Grid) RoomReport(row, col int) string {
	room := g.roomOrEdge(row, col)
	d := &room.Doors
	return fmt.Sprintf("(%d, %d) Room(%c) [N(%c), S(%c), E(%c), W(%c)]",
		row, col, room.Occupant.Symbol(),
		d.north.Occupant.Symbol(), d.south.Occupant.Symbol(),
		d.east.Occupant.Symbol(), d.west.Occupant.Symbol())
}

// Report lists every room in scan order, one line each.
func (g *Grid) Report() string {
	lines := make([]string, 0, len(g.coords))
	g.ForEachRoom(func(c Coord, _ *Room) {
		lines = append(lines, g.RoomReport(c.Row, c.Col))
	})
	return strings.Join(lines, "\n")
}
