package world

// Room is one grid cell: a single occupant plus door links to the four
// neighboring rooms. The grid owns all rooms; doors never own their targets.
type Room struct {
	Occupant *Item
	Doors    Doors

	// Grid position
	Row int
	Col int
}

// NewRoom creates a room holding occupant. Every door starts sealed to the
// edge sentinel until Connect links the room into a grid.
func NewRoom(row, col int, occupant *Item) *Room {
	return &Room{
		Occupant: occupant,
		Doors:    sealedDoors(),
		Row:      row,
		Col:      col,
	}
}

// Enter delegates to the occupant's interaction rule and returns the room
// the robot ends up in. Adding a new occupant kind never touches room code.
func (r *Room) Enter(robot *Robot) *Room {
	return r.Occupant.Interact(robot, r)
}
