// Package state holds one simulation session: a built maze, its robot, and
// the bookkeeping around them.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"robotmaze/pkg/engine/world"
)

// Outcome classifies what a single step did.
type Outcome int

const (
	OutcomeBlocked Outcome = iota
	OutcomeMoved
	OutcomeAteFood
	OutcomeTeleported
	OutcomeFinished
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeAteFood:
		return "ate food"
	case OutcomeTeleported:
		return "teleported"
	case OutcomeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is one run of a maze. The grid and robot are exclusively owned by
// the session; callers serialize steps (the core assumes a single actor).
type Session struct {
	MazeName string
	Grid     *world.Grid
	Robot    *world.Robot

	Moves     int
	FoodEaten int
	Finished  bool

	Messages []string

	mazeText string
	visited  mapset.Set[*world.Room]
}

// NewSession builds the maze and places the robot at its start.
func NewSession(name, mazeText string) *Session {
	s := &Session{
		MazeName: name,
		mazeText: mazeText,
	}
	s.build()
	return s
}

func (s *Session) build() {
	s.Grid = world.BuildGrid(s.mazeText)
	s.Robot = world.NewRobot(s.Grid.StartRoom())
	s.Moves = 0
	s.FoodEaten = 0
	s.Finished = false
	s.visited = mapset.New[*world.Room]()
	s.visited.Put(s.Robot.Room)
}

// Reset rebuilds the maze from its text, restoring consumed food and the
// robot's start position. Messages are kept.
func (s *Session) Reset() {
	s.build()
}

// Step executes one move and classifies the result. Once the end-game room
// is reached further steps are ignored; the terminal condition is the
// driver's to act on.
func (s *Session) Step(dir world.Direction) Outcome {
	if s.Finished {
		return OutcomeFinished
	}

	from := s.Robot.Room
	target := from.Doors.Open(dir)
	// Inspect the destination before moving: eating food rewrites it.
	targetKind := target.Occupant.Kind
	paired := target.Occupant.Pair() != nil

	s.Robot.Move(dir)
	s.Moves++
	s.visited.Put(s.Robot.Room)

	switch {
	case targetKind == world.Food:
		s.FoodEaten++
		return OutcomeAteFood
	case targetKind == world.EndGame:
		s.Finished = true
		return OutcomeFinished
	case targetKind == world.Teleport:
		if !paired {
			return OutcomeBlocked
		}
		return OutcomeTeleported
	case s.Robot.Room == from:
		return OutcomeBlocked
	default:
		return OutcomeMoved
	}
}

// Snapshot renders the current grid with the robot overlaid.
func (s *Session) Snapshot() string {
	return s.Grid.Snapshot(s.Robot)
}

// VisitedRooms returns how many distinct rooms the robot has occupied.
func (s *Session) VisitedRooms() int {
	return s.visited.Size()
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
