package core

import "fmt"

// InvalidCharError reports a character the level grammar does not accept,
// together with the cell where it was found.
type InvalidCharError struct {
	Char rune
	Pos  Position
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at row %d, column %d", e.Char, e.Pos.Row(), e.Pos.Column())
}

// Parse builds a level from its ASCII description, one row per line:
//
//	#  wall            .  square
//	$  box             *  box on square
//	@  player          +  player on square
//	   (space) floor
//
// The first unknown character aborts parsing with an *InvalidCharError.
// Input without a player marker is accepted; the player then starts at
// (0, 0). The returned level has an empty title and zero steps.
func Parse(text string) (*Level, error) {
	l := &Level{
		walls:   make(positionSet),
		boxes:   make(positionSet),
		squares: make(positionSet),
	}

	row, col := 0, 0
	for _, r := range text {
		if r == '\n' {
			row++
			col = 0
			continue
		}

		pos := NewPosition(row, col)
		switch TileOf(r) {
		case TileFloor:
		case TileWall:
			l.walls.add(pos)
		case TileSquare:
			l.squares.add(pos)
		case TileBox:
			l.boxes.add(pos)
		case TilePlayer:
			l.player = pos
		case TilePlayerOnSquare:
			l.player = pos
			l.squares.add(pos)
		case TileBoxOnSquare:
			l.boxes.add(pos)
			l.squares.add(pos)
		case TileInvalid:
			return nil, &InvalidCharError{Char: r, Pos: pos}
		}
		col++
	}

	l.computeExtents()
	return l, nil
}

// MustParse is like Parse but panics on error. Intended for levels compiled
// into the program and for tests.
func MustParse(text string) *Level {
	l, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("core: %v", err))
	}
	return l
}
