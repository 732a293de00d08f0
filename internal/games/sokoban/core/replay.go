package core

import "fmt"

// Replay applies a move string in LURD notation (l, u, r, d; upper case
// letters conventionally mark pushes but are treated the same). Blocked
// moves are skipped like any rejected step. Whitespace is ignored.
//
// Returns how many moves changed the level. An unknown letter stops the
// replay with an error; moves before it stay applied.
func (l *Level) Replay(moves string) (int, error) {
	applied := 0
	for i, r := range moves {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		d, ok := ParseDirection(r)
		if !ok {
			return applied, fmt.Errorf("unknown move %q at index %d", r, i)
		}
		if l.Step(d) {
			applied++
		}
	}
	return applied, nil
}
