package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares packed into a 64-bit word, bit i for
// square i. The zero value is the empty set.
type SquareSet uint64

// Border membership sets for the four board edges. Stepping logic uses
// these to tell a wrap around an edge from a legitimate move, since a
// horizontal wrap keeps the raw index inside 0..63.
const (
	BorderNorth SquareSet = 0x00000000000000FF // A8-H8
	BorderSouth SquareSet = 0xFF00000000000000 // A1-H1
	BorderWest  SquareSet = 0x0101010101010101 // A file
	BorderEast  SquareSet = 0x8080808080808080 // H file
)

// Contains reports whether the set holds s.
func (ss SquareSet) Contains(s Square) bool {
	if s < 0 || s > 63 {
		return false
	}
	return ss&(1<<uint(s)) != 0
}

// Add inserts s into the set. Squares outside the board are ignored.
func (ss *SquareSet) Add(s Square) {
	if s < 0 || s > 63 {
		return
	}
	*ss |= 1 << uint(s)
}

// Len returns the number of squares in the set.
func (ss SquareSet) Len() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares returns the members of the set in ascending index order.
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for w := uint64(ss); w != 0; w &= w - 1 {
		out = append(out, Square(bits.TrailingZeros64(w)))
	}
	return out
}

// String renders the set as notations in ascending index order,
// such as "{A3 B3 C3}".
func (ss SquareSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range ss.Squares() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
