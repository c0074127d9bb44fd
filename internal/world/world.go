// ABOUTME: WorldState: the entity position in grid coordinates, plus movement and clamping
// ABOUTME: One grid column is two terminal columns wide; the render loop owns the only instance

package world

// State is the entity position. X counts grid columns, Y counts rows.
// Values may leave the visible area between moves; Clamp brings them back.
type State struct {
	X int
	Y int
}

// Move shifts the position by (dx, dy) without bounds checking.
func (s *State) Move(dx, dy int) {
	s.X += dx
	s.Y += dy
}

// Bounds returns the exclusive upper limits for a terminal of
// cols x rows cells: the grid is cols/2 wide and rows tall.
func Bounds(cols, rows int) (maxX, maxY int) {
	return cols / 2, rows
}

// Clamp confines the position to [0, cols/2-1] x [0, rows-1]. The lower
// bound is applied last, so a viewport with no room pins the coordinate
// to 0 rather than -1.
func (s *State) Clamp(cols, rows int) {
	maxX, maxY := Bounds(cols, rows)
	s.X = clamp(s.X, maxX)
	s.Y = clamp(s.Y, maxY)
}

func clamp(v, limit int) int {
	v = min(v, limit-1)
	return max(v, 0)
}

// ScreenCol maps the grid column to the terminal column where the glyph starts.
func (s State) ScreenCol() int {
	return s.X * 2
}
