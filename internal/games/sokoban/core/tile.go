package core

// Tile is one symbol of the level grammar.
type Tile int

const (
	TileInvalid Tile = iota
	TileFloor
	TileWall
	TileSquare
	TileBox
	TilePlayer
	TilePlayerOnSquare
	TileBoxOnSquare
)

// TileOf classifies a grammar character. Unknown characters (newline
// included) are TileInvalid.
func TileOf(r rune) Tile {
	switch r {
	case ' ':
		return TileFloor
	case '#':
		return TileWall
	case '.':
		return TileSquare
	case '$':
		return TileBox
	case '@':
		return TilePlayer
	case '+':
		return TilePlayerOnSquare
	case '*':
		return TileBoxOnSquare
	default:
		return TileInvalid
	}
}

// Symbol returns the grammar character for the tile.
func (t Tile) Symbol() rune {
	switch t {
	case TileFloor:
		return ' '
	case TileWall:
		return '#'
	case TileSquare:
		return '.'
	case TileBox:
		return '$'
	case TilePlayer:
		return '@'
	case TilePlayerOnSquare:
		return '+'
	case TileBoxOnSquare:
		return '*'
	default:
		return '?'
	}
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileSquare:
		return "square"
	case TileBox:
		return "box"
	case TilePlayer:
		return "player"
	case TilePlayerOnSquare:
		return "player on square"
	case TileBoxOnSquare:
		return "box on square"
	default:
		return "invalid"
	}
}
