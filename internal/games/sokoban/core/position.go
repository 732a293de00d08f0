// Package core implements the Sokoban level engine: grid positions, the
// mutable level state with its push rule, and the ASCII level grammar.
// It has no dependencies on the terminal platform so it can be tested and
// reused on its own.
package core

import "fmt"

// Direction is one of the four moves a player can make.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a LURD move letter (either case) to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'u', 'U':
		return Up, true
	case 'd', 'D':
		return Down, true
	case 'l', 'L':
		return Left, true
	case 'r', 'R':
		return Right, true
	}
	return Up, false
}

// Position is a (row, column) cell coordinate. Rows grow downward and
// columns grow to the right. The grid is unbounded: whether a cell is usable
// is decided by level membership, never by bounds.
type Position struct {
	row int
	col int
}

// NewPosition creates a position from a row and column.
func NewPosition(row, col int) Position {
	return Position{row: row, col: col}
}

// Row returns the row number.
func (p Position) Row() int {
	return p.row
}

// Column returns the column number.
func (p Position) Column() int {
	return p.col
}

// Neighbor returns the adjacent position in the given direction.
func (p Position) Neighbor(d Direction) Position {
	switch d {
	case Up:
		return Position{row: p.row - 1, col: p.col}
	case Down:
		return Position{row: p.row + 1, col: p.col}
	case Left:
		return Position{row: p.row, col: p.col - 1}
	case Right:
		return Position{row: p.row, col: p.col + 1}
	default:
		return p
	}
}

// Less orders positions by row, then column.
func (p Position) Less(other Position) bool {
	if p.row != other.row {
		return p.row < other.row
	}
	return p.col < other.col
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.row, p.col)
}
