package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"robotmaze/pkg/engine/input"
	"robotmaze/pkg/engine/world"
	"robotmaze/pkg/game/mazes"
	"robotmaze/pkg/game/renderer"
	"robotmaze/pkg/game/renderer/ebitengine"
	"robotmaze/pkg/game/renderer/tui"
	"robotmaze/pkg/game/state"
)

func initGotext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.FormatText(msg, a...))
}

// loadMaze resolves the -maze/-file flags to a maze name and layout text.
func loadMaze(name, file string) (string, string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", err
		}
		return file, string(data), nil
	}

	text, err := mazes.Get(name)
	if err != nil {
		return "", "", err
	}
	return name, text, nil
}

// runSolution replays a string of direction letters and prints the result.
func runSolution(s *state.Session, solution string) {
	for _, ch := range solution {
		dir, ok := world.ParseDirection(string(ch))
		if !ok {
			fmt.Printf("bad direction %q in solution\n", ch)
			os.Exit(1)
		}

		outcome := s.Step(dir)
		fmt.Printf("%v: %v\n", dir, outcome)
		if s.Finished {
			break
		}
	}

	fmt.Println()
	fmt.Println(s.Snapshot())
	fmt.Printf("moves=%d food=%d rooms=%d finished=%v\n",
		s.Moves, s.FoodEaten, s.VisitedRooms(), s.Finished)
}

func main() {
	mazeName := flag.String("maze", mazes.Default, "built-in maze to play")
	mazeFile := flag.String("file", "", "load the maze layout from a file instead")
	solution := flag.String("solution", "", "replay a string of direction letters (e.g. eenn) and exit")
	report := flag.Bool("report", false, "print the room report and exit")
	gui := flag.Bool("gui", false, "play in a graphical window")
	flag.Parse()

	initGotext()

	name, text, err := loadMaze(*mazeName, *mazeFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	s := state.NewSession(name, text)

	if *report {
		fmt.Println(s.Grid.Report())
		return
	}

	if *solution != "" {
		runSolution(s, *solution)
		return
	}

	if *gui {
		if err := ebitengine.Run(s); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()

	for {
		mainLoop(s)
	}
}

func mainLoop(s *state.Session) {
	renderer.Clear()
	renderer.RenderFrame(s)

	fmt.Printf("\n> ")

	processIntent(s, renderer.GetInput())
}

func processIntent(s *state.Session, intent input.Intent) {
	switch intent.Action {
	case input.ActionQuit:
		renderer.Clear()
		fmt.Println(gotext.Get("GOODBYE"))
		os.Exit(0)
	case input.ActionReset:
		s.Reset()
		logMessage(s, "GT{RESET}")
	case input.ActionHint:
		logMessage(s, "Open doors: ACTION{%v}", strings.Join(openDirections(s), ", "))
	case input.ActionReport:
		renderer.Clear()
		fmt.Println(s.Grid.Report())
		fmt.Println("\npress a key")
		renderer.GetInput()
	case input.ActionNone:
		logMessage(s, "GT{UNKNOWN_COMMAND}")
	default:
		if dir, ok := input.DirectionFor(intent.Action); ok {
			step(s, dir)
		}
	}
}

// step runs one move and narrates the outcome.
func step(s *state.Session, dir world.Direction) {
	switch s.Step(dir) {
	case state.OutcomeBlocked:
		logMessage(s, "%v: GT{BLOCKED}", dir)
	case state.OutcomeAteFood:
		logMessage(s, "%v: ITEM{Eat food}", dir)
	case state.OutcomeTeleported:
		logMessage(s, "%v: GT{TELEPORTED}", dir)
	case state.OutcomeFinished:
		logMessage(s, "GT{FINISHED}")
	}
}

// openDirections lists the directions the robot could actually move in.
func openDirections(s *state.Session) []string {
	var open []string
	for _, dir := range world.AllDirections() {
		target := s.Robot.Room.Doors.Open(dir)
		switch target.Occupant.Kind {
		case world.Wall, world.Edge:
			continue
		case world.Teleport:
			if target.Occupant.Pair() == nil {
				continue
			}
		}
		open = append(open, dir.String())
	}
	return open
}
