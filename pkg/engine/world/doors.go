package world

// Doors is a room's link-set: one neighbor reference per cardinal direction.
// Invariant: all four links are always populated, pointing either at a grid
// room or at the shared edge sentinel.
type Doors struct {
	north *Room
	south *Room
	east  *Room
	west  *Room
}

// edgeSentinel is the one room standing in for everything outside the maze.
// Its own doors loop back to itself, so walking "off" it goes nowhere.
var edgeSentinel = func() *Room {
	r := &Room{Occupant: edgeItem, Row: -1, Col: -1}
	r.Doors = Doors{north: r, south: r, east: r, west: r}
	return r
}()

// EdgeSentinel returns the shared impassable room representing any
// coordinate outside the maze.
func EdgeSentinel() *Room {
	return edgeSentinel
}

func sealedDoors() Doors {
	return Doors{
		north: edgeSentinel,
		south: edgeSentinel,
		east:  edgeSentinel,
		west:  edgeSentinel,
	}
}

// Open returns the neighbor in the given direction. Direction values outside
// the enum resolve to the edge sentinel, so Open is a total function.
func (d *Doors) Open(dir Direction) *Room {
	if !dir.IsValid() {
		return edgeSentinel
	}
	switch dir {
	case North:
		return d.north
	case South:
		return d.south
	case East:
		return d.east
	default:
		return d.west
	}
}

// Connect links the room at (row, col) against the grid. Must run only after
// the whole grid is placed; coordinates with no room stay sealed to the
// sentinel.
func (d *Doors) Connect(row, col int, grid *Grid) {
	d.north = grid.roomOrEdge(row-1, col)
	d.south = grid.roomOrEdge(row+1, col)
	d.east = grid.roomOrEdge(row, col+1)
	d.west = grid.roomOrEdge(row, col-1)
}
