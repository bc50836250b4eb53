// Package tui is the terminal renderer: colored symbol grid, status bar and
// a scrolling messages pane.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"robotmaze/pkg/engine/input"
	"robotmaze/pkg/engine/terminal"
	"robotmaze/pkg/engine/world"
	"robotmaze/pkg/game/renderer"
	"robotmaze/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since translation keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorCell        color.Style
	colorRobot       color.Style
	colorFood        color.Style
	colorTeleport    color.Style
	colorGoal        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgGray}
	t.colorRobot = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorFood = color.Style{color.FgYellow}
	t.colorTeleport = color.Style{color.FgCyan, color.OpBold}
	t.colorGoal = color.Style{color.FgMagenta, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.GetInputWithArrows(),
	}
	return input.MapToIntent(input.NewDebouncedInput(raw))
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleRobot:
		return t.colorRobot.Sprint(text)
	case renderer.StyleFood:
		return t.colorFood.Sprint(text)
	case renderer.StyleTeleport:
		return t.colorTeleport.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorFood.Sprint(operand)
		case "ROOM":
			val = t.colorCell.Sprint(dynamicGet(operand))
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	// Maze name in top left
	t.colorAction.Printf("Maze: %s\n\n", s.MazeName)

	t.printMap(s)

	t.printStatusBar(s)

	t.printPossibleActions()

	t.printMessagesPane(s)
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Print(t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + t.FormatText("%s", txt) + "\n")
}

// renderRoom returns the colored symbol for one room, with the robot
// overlaid on its current room.
func (t *TUIRenderer) renderRoom(s *state.Session, room *world.Room) string {
	if s.Robot.Room == room {
		return t.colorRobot.Sprint(string(world.SymbolRobot))
	}

	symbol := string(room.Occupant.Symbol())
	switch room.Occupant.Kind {
	case world.Wall, world.Edge:
		return t.colorSubtle.Sprint(symbol)
	case world.Food:
		return t.colorFood.Sprint(symbol)
	case world.Teleport:
		return t.colorTeleport.Sprint(symbol)
	case world.EndGame:
		return t.colorGoal.Sprint(symbol)
	default:
		return t.colorCell.Sprint(symbol)
	}
}

// directionLabel describes what lies one step away, e.g. "North: food".
func (t *TUIRenderer) directionLabel(s *state.Session, dir world.Direction) string {
	neighbor := s.Robot.Room.Doors.Open(dir)
	var desc string
	switch neighbor.Occupant.Kind {
	case world.Wall:
		desc = t.colorDenied.Sprint("wall")
	case world.Edge:
		desc = t.colorDenied.Sprint("edge")
	case world.Food:
		desc = t.colorFood.Sprint("food")
	case world.Teleport:
		if neighbor.Occupant.Pair() == nil {
			desc = t.colorDenied.Sprint("dead teleport")
		} else {
			desc = t.colorTeleport.Sprintf("teleport %c", neighbor.Occupant.Label())
		}
	case world.EndGame:
		desc = t.colorGoal.Sprint("goal")
	default:
		desc = t.colorCell.Sprint("open")
	}
	return t.FormatText("ACTION{%v}: %s", dir, desc)
}

// printMap renders the whole maze centered in the terminal, with the four
// direction labels around it.
func (t *TUIRenderer) printMap(s *state.Session) {
	termWidth := terminal.GetWidth()
	_, cols := s.Grid.Extent()

	centerIndent := (termWidth - cols) / 2
	if centerIndent < 0 {
		centerIndent = 0
	}
	indent := strings.Repeat(" ", centerIndent)

	t.printCentered(t.directionLabel(s, world.North), termWidth)
	fmt.Println()

	currentRow := 0
	fmt.Print(indent)
	s.Grid.ForEachRoom(func(c world.Coord, room *world.Room) {
		for c.Row > currentRow {
			fmt.Print("\n" + indent)
			currentRow++
		}
		fmt.Print(t.renderRoom(s, room))
	})
	fmt.Println()

	fmt.Println()
	t.printCentered(t.directionLabel(s, world.West)+"   "+t.directionLabel(s, world.East), termWidth)
	t.printCentered(t.directionLabel(s, world.South), termWidth)
	fmt.Println()
}

// printCentered prints one line centered to the given width, ignoring the
// ANSI escapes when measuring.
func (t *TUIRenderer) printCentered(text string, width int) {
	visible := len(color.ClearCode(text))
	pad := (width - visible) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Println(strings.Repeat(" ", pad) + text)
}

// printStatusBar renders the session counters
func (t *TUIRenderer) printStatusBar(s *state.Session) {
	fmt.Println()
	fmt.Print(t.colorSubtle.Sprint("Status: "))
	parts := []string{
		t.colorAction.Sprintf("moves %d", s.Moves),
		t.colorFood.Sprintf("food %d", s.FoodEaten),
		t.colorCell.Sprintf("rooms %d", s.VisitedRooms()),
	}
	if s.Finished {
		parts = append(parts, t.colorGoal.Sprint("FINISHED"))
	}
	fmt.Println(strings.Join(parts, t.colorSubtle.Sprint(" | ")))
}

// possibleActions builds the action lines shown under the map. The key lists
// come from the live binding table, so rebinding never leaves this stale.
func (t *TUIRenderer) possibleActions() []string {
	lines := []string{"ACTION{arrows} or nsew to move"}

	byAction := input.GetBindingsByAction()
	for _, action := range []input.Action{
		input.ActionReset,
		input.ActionHint,
		input.ActionReport,
		input.ActionQuit,
	} {
		codes := strings.Join(byAction[action], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s",
			input.ActionName(action), t.colorActionShort.Sprint(codes)))
	}

	return lines
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	for _, line := range t.possibleActions() {
		t.printBullet(line)
	}
}

// messagesHeader builds the ruled " Messages " divider for the given width.
// Both dash runs are clamped so very narrow terminals never produce a
// negative repeat count.
func (t *TUIRenderer) messagesHeader(width int) string {
	label := " Messages "
	labelLen := len(label)

	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 0 {
		rightLen = 0
	}

	return strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	width := terminal.GetWidth()

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(t.messagesHeader(width)))

	if len(s.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
