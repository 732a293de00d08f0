package core

import (
	"sort"
	"strings"
)

// positionSet is an unordered set of cells.
type positionSet map[Position]struct{}

func (s positionSet) has(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s positionSet) add(p Position) {
	s[p] = struct{}{}
}

// clone returns an independent copy of the set.
func (s positionSet) clone() positionSet {
	c := make(positionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// sorted returns the members ordered by row, then column.
func (s positionSet) sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Level is the state of one puzzle.
//
// Walls and squares (target cells) are fixed once the level is parsed; the
// player and the boxes move through Step. A zero Level is not usable, build
// one with Parse.
type Level struct {
	title   string
	player  Position
	steps   int
	pushes  int
	walls   positionSet
	boxes   positionSet
	squares positionSet
	width   int
	height  int
}

// Step moves the player one cell in the given direction, pushing a box if
// one is in the way and the cell behind it is free. Blocked moves leave the
// level untouched. Returns true if the player moved.
func (l *Level) Step(d Direction) bool {
	next := l.player.Neighbor(d)
	if l.IsFree(next) {
		return l.movePlayer(next)
	}
	if !l.IsBox(next) {
		return false
	}

	beyond := next.Neighbor(d)
	if !l.IsFree(beyond) {
		return false
	}
	if l.moveBox(next, beyond) {
		l.pushes++
	}
	return l.movePlayer(next)
}

// movePlayer relocates the player, counting a step only if the position
// actually changed.
func (l *Level) movePlayer(p Position) bool {
	if p == l.player {
		return false
	}
	l.player = p
	l.steps++
	return true
}

// moveBox relocates a box. Nothing happens if there is no box at from.
func (l *Level) moveBox(from, to Position) bool {
	if !l.boxes.has(from) {
		return false
	}
	delete(l.boxes, from)
	l.boxes.add(to)
	return true
}

// IsCompleted reports whether every square holds a box. Extra boxes off the
// squares do not matter.
func (l *Level) IsCompleted() bool {
	for p := range l.squares {
		if !l.boxes.has(p) {
			return false
		}
	}
	return true
}

// Remaining returns the number of squares still missing a box.
func (l *Level) Remaining() int {
	n := 0
	for p := range l.squares {
		if !l.boxes.has(p) {
			n++
		}
	}
	return n
}

// IsFree reports whether the cell holds neither a wall nor a box.
// An empty square is free.
func (l *Level) IsFree(p Position) bool {
	return !l.walls.has(p) && !l.boxes.has(p)
}

// IsBox reports whether a box is at the given position.
func (l *Level) IsBox(p Position) bool {
	return l.boxes.has(p)
}

// IsPlayer reports whether the player stands at the given position.
func (l *Level) IsPlayer(p Position) bool {
	return l.player == p
}

// IsSquare reports whether the given position is a target square.
func (l *Level) IsSquare(p Position) bool {
	return l.squares.has(p)
}

// IsWall reports whether the given position is a wall.
func (l *Level) IsWall(p Position) bool {
	return l.walls.has(p)
}

// Extents returns the number of columns and rows spanned by the level.
func (l *Level) Extents() (width, height int) {
	return l.width, l.height
}

// Title returns the level title.
func (l *Level) Title() string {
	return l.title
}

// SetTitle changes the level title.
func (l *Level) SetTitle(title string) {
	l.title = title
}

// Steps returns the number of moves that changed the player's position.
func (l *Level) Steps() int {
	return l.steps
}

// Pushes returns the number of box moves.
func (l *Level) Pushes() int {
	return l.pushes
}

// Player returns the player's position.
func (l *Level) Player() Position {
	return l.player
}

// Boxes returns the box positions in row-major order.
func (l *Level) Boxes() []Position {
	return l.boxes.sorted()
}

// Squares returns the target squares in row-major order.
func (l *Level) Squares() []Position {
	return l.squares.sorted()
}

// Walls returns the wall positions in row-major order.
func (l *Level) Walls() []Position {
	return l.walls.sorted()
}

// Clone returns a deep copy of the level. Restoring a clone taken right
// after parsing resets the puzzle.
func (l *Level) Clone() *Level {
	c := *l
	c.walls = l.walls.clone()
	c.boxes = l.boxes.clone()
	c.squares = l.squares.clone()
	return &c
}

// String renders the level back into the ASCII grammar accepted by Parse.
// Trailing floor cells are trimmed from every row.
func (l *Level) String() string {
	var sb strings.Builder
	for row := range l.height {
		var line strings.Builder
		for col := range l.width {
			line.WriteRune(l.TileAt(NewPosition(row, col)).Symbol())
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TileAt classifies the given cell.
func (l *Level) TileAt(p Position) Tile {
	switch {
	case l.walls.has(p):
		return TileWall
	case l.player == p && l.squares.has(p):
		return TilePlayerOnSquare
	case l.player == p:
		return TilePlayer
	case l.boxes.has(p) && l.squares.has(p):
		return TileBoxOnSquare
	case l.boxes.has(p):
		return TileBox
	case l.squares.has(p):
		return TileSquare
	default:
		return TileFloor
	}
}

// computeExtents derives width and height from every named feature,
// starting from the player so an empty level still spans its cell.
func (l *Level) computeExtents() {
	maxCol, maxRow := l.player.col, l.player.row
	for _, set := range []positionSet{l.walls, l.squares, l.boxes} {
		for p := range set {
			maxCol = max(maxCol, p.col)
			maxRow = max(maxRow, p.row)
		}
	}
	l.width = maxCol + 1
	l.height = maxRow + 1
}
