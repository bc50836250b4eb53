// Package server exposes maze sessions over websockets. Each connection owns
// one session: the client sends move commands, the server answers with the
// full frame after every step.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"robotmaze/pkg/engine/world"
	"robotmaze/pkg/game/mazes"
	"robotmaze/pkg/game/state"
)

// Command is one client message. Move holds a direction token ("north", "n",
// "E", ...); Reset rebuilds the maze.
type Command struct {
	Move  string `json:"move"`
	Reset bool   `json:"reset,omitempty"`
}

// Frame is the state pushed to the client after every command.
type Frame struct {
	Session   string `json:"session"`
	Maze      string `json:"maze"`
	Snapshot  string `json:"snapshot"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Moves     int    `json:"moves"`
	FoodEaten int    `json:"foodEaten"`
	Visited   int    `json:"visited"`
	Finished  bool   `json:"finished"`
	Outcome   string `json:"outcome,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PlayServer upgrades /play requests and runs sessions.
type PlayServer struct {
	Upgrader *websocket.Upgrader

	// DefaultMaze is served when the client names none.
	DefaultMaze string
}

func NewPlayServer() *PlayServer {
	return &PlayServer{
		Upgrader:    &websocket.Upgrader{},
		DefaultMaze: mazes.Default,
	}
}

// frame builds the client view of a session.
func frame(id string, s *state.Session, outcome, errMsg string) Frame {
	return Frame{
		Session:   id,
		Maze:      s.MazeName,
		Snapshot:  s.Snapshot(),
		Row:       s.Robot.Room.Row,
		Col:       s.Robot.Room.Col,
		Moves:     s.Moves,
		FoodEaten: s.FoodEaten,
		Visited:   s.VisitedRooms(),
		Finished:  s.Finished,
		Outcome:   outcome,
		Error:     errMsg,
	}
}

// HandlePlay upgrades the connection and runs the command loop until the
// client disconnects. The maze is chosen with the ?maze= query parameter.
func (p *PlayServer) HandlePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mazeName := r.URL.Query().Get("maze")
		if mazeName == "" {
			mazeName = p.DefaultMaze
		}

		mazeText, err := mazes.Get(mazeName)
		if err != nil {
			log.WithField("maze", mazeName).Warn("unknown maze requested")
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		con, err := p.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Error("websocket upgrade failed")
			return
		}
		defer con.Close()

		id := uuid.New().String()
		session := state.NewSession(mazeName, mazeText)

		logger := log.WithFields(log.Fields{
			"session": id,
			"maze":    mazeName,
		})
		logger.Info("session started")

		if err := con.WriteJSON(frame(id, session, "", "")); err != nil {
			logger.WithError(err).Error("write failed")
			return
		}

		for {
			var cmd Command
			if err := con.ReadJSON(&cmd); err != nil {
				logger.WithError(err).Info("session ended")
				return
			}

			var outcome, errMsg string
			switch {
			case cmd.Reset:
				session.Reset()
			default:
				dir, ok := world.ParseDirection(cmd.Move)
				if !ok {
					errMsg = "unknown direction: " + cmd.Move
				} else {
					outcome = session.Step(dir).String()
					logger.WithFields(log.Fields{
						"direction": dir,
						"outcome":   outcome,
						"moves":     session.Moves,
					}).Debug("step")
				}
			}

			if err := con.WriteJSON(frame(id, session, outcome, errMsg)); err != nil {
				logger.WithError(err).Error("write failed")
				return
			}
		}
	}
}

// HandleMazeList reports the built-in maze names as JSON.
func (p *PlayServer) HandleMazeList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(mazes.Names()); err != nil {
			log.WithError(err).Error("maze list encode failed")
		}
	}
}
