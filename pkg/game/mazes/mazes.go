// Package mazes holds the built-in maze layouts.
package mazes

import (
	"fmt"
	"sort"
)

// Classic is the original robot-explorer maze: three teleport pairs, two
// wall bands and the end-game marker in the bottom-left corner.
const Classic = `a_...#..._c
R_...#...__
###########
a_......._b
###########
!_c_....._b`

// Pocket is a small maze for quick runs and demos.
const Pocket = `R_._
#_#_
t.!t`

// Orchard has no teleports, just food between walls.
const Orchard = `R..#..
.#.#.!
......`

var library = map[string]string{
	"classic": Classic,
	"pocket":  Pocket,
	"orchard": Orchard,
}

// Default is the maze used when none is asked for by name.
const Default = "classic"

// Get returns the layout registered under name.
func Get(name string) (string, error) {
	maze, ok := library[name]
	if !ok {
		return "", fmt.Errorf("unknown maze %q (have: %v)", name, Names())
	}
	return maze, nil
}

// Names returns the registered maze names, sorted.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
