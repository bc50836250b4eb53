package world

import (
	"strings"
	"testing"
)

func TestBuildGridPlacement(t *testing.T) {
	g := BuildGrid("R_.\n#_.")

	if got := g.Size(); got != 6 {
		t.Fatalf("Size() = %d, want 6", got)
	}

	cases := []struct {
		row, col int
		want     Kind
	}{
		{0, 0, Empty}, // marker consumed into the start position
		{0, 1, Empty},
		{0, 2, Food},
		{1, 0, Wall},
		{1, 1, Empty},
		{1, 2, Food},
	}
	for _, c := range cases {
		if got := g.Room(c.row, c.col).Occupant.Kind; got != c.want {
			t.Errorf("Room(%d, %d).Occupant.Kind = %v, want %v", c.row, c.col, got, c.want)
		}
	}

	start := g.StartRoom()
	if start.Row != 0 || start.Col != 0 {
		t.Errorf("StartRoom() at (%d, %d), want (0, 0)", start.Row, start.Col)
	}
}

func TestBuildGridNoMarkerStartsNowhere(t *testing.T) {
	g := BuildGrid("__\n__")
	if got := g.StartRoom(); got != EdgeSentinel() {
		t.Errorf("StartRoom() = %v, want edge sentinel", got)
	}
}

func TestOutOfBoundsResolvesToEdge(t *testing.T) {
	g := BuildGrid("__")
	for _, c := range []Coord{{-1, 0}, {0, -1}, {5, 5}, {0, 2}} {
		if got := g.Room(c.Row, c.Col); got != EdgeSentinel() {
			t.Errorf("Room(%d, %d) = %v, want edge sentinel", c.Row, c.Col, got)
		}
	}
}

func TestBorderDoorsOpenToEdge(t *testing.T) {
	g := BuildGrid("__")
	corner := g.Room(0, 0)

	if got := corner.Doors.Open(North); got != EdgeSentinel() {
		t.Errorf("Open(North) on top row = %v, want edge sentinel", got)
	}
	if got := corner.Doors.Open(West); got != EdgeSentinel() {
		t.Errorf("Open(West) on first column = %v, want edge sentinel", got)
	}
	if got := corner.Doors.Open(East); got != g.Room(0, 1) {
		t.Errorf("Open(East) = %v, want room (0, 1)", got)
	}
}

func TestOpenUnknownDirectionResolvesToEdge(t *testing.T) {
	g := BuildGrid("__")
	if got := g.Room(0, 0).Doors.Open(Direction(99)); got != EdgeSentinel() {
		t.Errorf("Open(99) = %v, want edge sentinel", got)
	}
}

func TestEdgeSentinelDoorsLoop(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := EdgeSentinel().Doors.Open(dir); got != EdgeSentinel() {
			t.Errorf("sentinel Open(%v) = %v, want the sentinel itself", dir, got)
		}
	}
}

func TestTeleportPairingIsMutual(t *testing.T) {
	g := BuildGrid("a_b\n___\nb_a")

	pairs := map[Coord]Coord{
		{0, 0}: {2, 2}, // the two 'a' endpoints
		{0, 2}: {2, 0}, // the two 'b' endpoints
	}
	for from, to := range pairs {
		a := g.Room(from.Row, from.Col)
		b := g.Room(to.Row, to.Col)
		if got := a.Occupant.Pair(); got != b {
			t.Errorf("pair of (%d, %d) = %v, want room (%d, %d)", from.Row, from.Col, got, to.Row, to.Col)
		}
		if got := b.Occupant.Pair(); got != a {
			t.Errorf("pair of (%d, %d) = %v, want room (%d, %d)", to.Row, to.Col, got, from.Row, from.Col)
		}
	}
}

func TestSameLabelPairsInScanOrder(t *testing.T) {
	// Four 'c' endpoints: first-found pairs with second-found, third with
	// fourth, following the row-major scan.
	g := BuildGrid("c_c\n___\nc_c")

	first := g.Room(0, 0)
	second := g.Room(0, 2)
	third := g.Room(2, 0)
	fourth := g.Room(2, 2)

	if got := first.Occupant.Pair(); got != second {
		t.Errorf("first 'c' paired with (%d, %d), want (0, 2)", got.Row, got.Col)
	}
	if got := third.Occupant.Pair(); got != fourth {
		t.Errorf("third 'c' paired with (%d, %d), want (2, 2)", got.Row, got.Col)
	}
}

func TestOddTeleportCountLeavesLastUnpaired(t *testing.T) {
	g := BuildGrid("z_z\n__z")

	unpaired := g.UnpairedTeleports()
	if len(unpaired) != 1 {
		t.Fatalf("UnpairedTeleports() returned %d rooms, want 1", len(unpaired))
	}
	if unpaired[0].Row != 1 || unpaired[0].Col != 2 {
		t.Errorf("unpaired endpoint at (%d, %d), want (1, 2)", unpaired[0].Row, unpaired[0].Col)
	}

	// Entering the unpaired endpoint behaves as a wall.
	robot := NewRobot(g.Room(1, 1))
	robot.Move(East)
	if robot.Room != g.Room(1, 1) {
		t.Errorf("robot moved to (%d, %d), want to stay at (1, 1)", robot.Room.Row, robot.Room.Col)
	}
}

func TestLabels(t *testing.T) {
	g := BuildGrid("a_b\nb_a")
	labels := g.Labels()
	if len(labels) != 2 {
		t.Fatalf("Labels() returned %d labels, want 2", len(labels))
	}
	if labels[0] != 'a' || labels[1] != 'b' {
		t.Errorf("Labels() = %q, want [a b]", string(labels))
	}
}

func TestSnapshotOverlaysRobot(t *testing.T) {
	g := BuildGrid("R_.\n#_.")
	robot := NewRobot(g.StartRoom())

	if got := g.Snapshot(robot); got != "R_.\n#_." {
		t.Errorf("Snapshot() = %q, want %q", got, "R_.\n#_.")
	}

	// The robot's symbol covers the underlying occupant, here the food at
	// (0, 2).
	robot.Move(East)
	robot.Move(East)
	if got := g.Snapshot(robot); got != "__R\n#_." {
		t.Errorf("Snapshot() after two east moves = %q, want %q", got, "__R\n#_.")
	}
}

func TestSnapshotWithoutRobotShowsOccupants(t *testing.T) {
	g := BuildGrid("#._")
	if got := g.Snapshot(nil); got != "#._" {
		t.Errorf("Snapshot(nil) = %q, want %q", got, "#._")
	}
}

func TestRoomReport(t *testing.T) {
	g := BuildGrid("R_.\n#_.")
	got := g.RoomReport(0, 0)
	want := "(0, 0) Room(_) [N(/), S(#), E(_), W(/)]"
	if got != want {
		t.Errorf("RoomReport(0, 0) = %q, want %q", got, want)
	}
}

func TestReportCoversEveryRoom(t *testing.T) {
	g := BuildGrid("__\n__")
	lines := strings.Split(g.Report(), "\n")
	if len(lines) != 4 {
		t.Errorf("Report() has %d lines, want 4", len(lines))
	}
}

func TestExtent(t *testing.T) {
	g := BuildGrid("___\n___")
	rows, cols := g.Extent()
	if rows != 2 || cols != 3 {
		t.Errorf("Extent() = (%d, %d), want (2, 3)", rows, cols)
	}
}
