// ABOUTME: Fixed key map from captured characters to world moves and the quit command
// ABOUTME: Unknown characters map to nothing; bindings are not configurable

package game

// command is what a single captured character asks the loop to do.
type command struct {
	dx, dy int
	quit   bool
}

var controls = map[rune]command{
	'w': {dy: -1},
	's': {dy: 1},
	'a': {dx: -1},
	'd': {dx: 1},
	'q': {quit: true},
}

// lookup returns the command bound to r and whether r is bound at all.
func lookup(r rune) (command, bool) {
	c, ok := controls[r]
	return c, ok
}
