package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"robotmaze/pkg/engine/world"
	"robotmaze/pkg/game/state"
)

func newTestRenderer() *TUIRenderer {
	t := New()
	t.Init()
	return t
}

func TestFormatTextMarkup(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name string
		msg  string
		args []any
		want string
	}{
		{"plain", "hello", nil, "hello"},
		{"item", "Found ITEM{%v}", []any{"food"}, "Found food"},
		{"action", "Press ACTION{quit}", nil, "Press quit"},
		{"untranslated key", "GT{NO_SUCH_KEY}", nil, "NO_SUCH_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.ClearCode(r.FormatText(tt.msg, tt.args...))
			if got != tt.want {
				t.Errorf("got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTextUnknownFunction(t *testing.T) {
	r := newTestRenderer()

	got := r.FormatText("BOGUS{x}")
	if !strings.Contains(got, "ERROR") {
		t.Errorf("got = %q, want error marker", got)
	}
}

func TestRenderRoomOverlaysRobot(t *testing.T) {
	r := newTestRenderer()
	s := state.NewSession("test", "R#")

	got := color.ClearCode(r.renderRoom(s, s.Robot.Room))
	if got != "R" {
		t.Errorf("robot room got = %q, want %q", got, "R")
	}

	wall := s.Grid.Room(0, 1)
	got = color.ClearCode(r.renderRoom(s, wall))
	if got != "#" {
		t.Errorf("wall room got = %q, want %q", got, "#")
	}
}

func TestPossibleActionsFollowBindings(t *testing.T) {
	r := newTestRenderer()

	var lines []string
	for _, line := range r.possibleActions() {
		lines = append(lines, color.ClearCode(line))
	}

	wantContains := []string{
		"Reset Maze: f5, r, reset",
		"Hint: ?, hint",
		"Room Report: report",
		"Quit: escape, q, quit",
	}
	for _, want := range wantContains {
		found := false
		for _, line := range lines {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("possibleActions() missing %q, got %v", want, lines)
		}
	}
}

func TestMessagesHeaderNarrowTerminal(t *testing.T) {
	r := newTestRenderer()

	// Narrower than the label itself must still produce a header, not panic.
	got := r.messagesHeader(5)
	if !strings.Contains(got, "Messages") {
		t.Errorf("messagesHeader(5) = %q, want it to contain the label", got)
	}

	got = r.messagesHeader(80)
	if n := len([]rune(got)); n != 80 {
		t.Errorf("messagesHeader(80) spans %d cells, want 80", n)
	}
}

func TestDirectionLabel(t *testing.T) {
	r := newTestRenderer()
	s := state.NewSession("test", "R.#")

	got := color.ClearCode(r.directionLabel(s, world.East))
	if got != "East: food" {
		t.Errorf("got = %q, want %q", got, "East: food")
	}

	got = color.ClearCode(r.directionLabel(s, world.North))
	if got != "North: edge" {
		t.Errorf("got = %q, want %q", got, "North: edge")
	}
}
