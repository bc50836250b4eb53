// Package world provides the grid-maze primitives: rooms, door links,
// the occupant catalog and the robot that walks between them.
package world

// Kind identifies what occupies a room.
type Kind int

// Occupant kinds. The catalog is closed: every map symbol resolves to one of
// these, with unreserved symbols becoming teleport labels.
const (
	Wall Kind = iota
	Food
	Empty
	Edge
	Teleport
	EndGame
	RobotMarker
)

// Reserved map symbols
const (
	SymbolRobot   = 'R'
	SymbolWall    = '#'
	SymbolFood    = '.'
	SymbolEmpty   = '_'
	SymbolEdge    = '/'
	SymbolEndGame = '!'
)

// Item is a room occupant. Teleports carry their pairing label and, once the
// grid build resolves pairs, a reference to the paired destination room.
// All other kinds are stateless and shared.
type Item struct {
	Kind  Kind
	label rune
	pair  *Room
}

// Shared instances for the stateless kinds. Eating food swaps a room's
// occupant pointer to emptyItem; the items themselves are never mutated.
var (
	wallItem   = &Item{Kind: Wall}
	foodItem   = &Item{Kind: Food}
	emptyItem  = &Item{Kind: Empty}
	edgeItem   = &Item{Kind: Edge}
	endItem    = &Item{Kind: EndGame}
	markerItem = &Item{Kind: RobotMarker}
)

// NewItem maps one map symbol to its occupant. Reserved symbols map to their
// catalog kind; any other symbol is a teleport labeled by that symbol.
func NewItem(symbol rune) *Item {
	switch symbol {
	case SymbolWall:
		return wallItem
	case SymbolFood:
		return foodItem
	case SymbolEmpty:
		return emptyItem
	case SymbolEdge:
		return edgeItem
	case SymbolEndGame:
		return endItem
	case SymbolRobot:
		return markerItem
	default:
		return &Item{Kind: Teleport, label: symbol}
	}
}

// Symbol returns the display character for this occupant.
func (it *Item) Symbol() rune {
	switch it.Kind {
	case Wall:
		return SymbolWall
	case Food:
		return SymbolFood
	case Empty:
		return SymbolEmpty
	case Edge:
		return SymbolEdge
	case EndGame:
		return SymbolEndGame
	case RobotMarker:
		return SymbolRobot
	default:
		return it.label
	}
}

// Label returns the pairing label of a teleport, or 0 for any other kind.
func (it *Item) Label() rune {
	if it.Kind != Teleport {
		return 0
	}
	return it.label
}

// Pair returns the paired teleport room. Nil means the endpoint is unpaired.
func (it *Item) Pair() *Room {
	return it.pair
}

// Interact resolves the robot's attempt to enter room and returns the room
// the robot occupies afterwards. This is the whole rule table: rooms have no
// entry logic of their own.
func (it *Item) Interact(robot *Robot, room *Room) *Room {
	switch it.Kind {
	case Wall, Edge, RobotMarker:
		return robot.Room
	case Empty, EndGame:
		return room
	case Food:
		// One-time: the room is empty from now on.
		room.Occupant = emptyItem
		return room
	case Teleport:
		if it.pair == nil {
			// An odd teleport count leaves one endpoint without a
			// destination; it behaves as a wall.
			return robot.Room
		}
		return it.pair
	default:
		return robot.Room
	}
}
