package world

// Robot is the mobile agent. It is never stored as a room occupant; renderers
// overlay its symbol on whichever room it currently holds.
type Robot struct {
	Room *Room
}

// NewRobot places a robot in the given room. A nil room means nowhere, which
// is the edge sentinel.
func NewRobot(room *Room) *Robot {
	if room == nil {
		room = edgeSentinel
	}
	return &Robot{Room: room}
}

// Move executes one directional step: open the door in that direction and
// let the destination decide where the robot ends up. The current-room
// reference is reassigned unconditionally, even when the answer is the room
// the robot started in.
func (r *Robot) Move(dir Direction) {
	r.Room = r.Room.Doors.Open(dir).Enter(r)
}
