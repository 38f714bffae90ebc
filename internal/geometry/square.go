package geometry

import (
	"fmt"
	"sort"

	errs "quadratum/internal/errors"
)

// CompletionCorners treats the segment i-j as one edge of a square and returns the
// two cells that complete it. Only one rotation direction is tried, so every square
// on the board is derived by exactly two pairs i < j. ok is false when one of the
// corners falls off the board or when i == j.
func CompletionCorners(i, j int) (k, l int, ok bool) {
	if i > j {
		panic(fmt.Errorf("%w: %d > %d", errs.ErrIndexOrder, i, j))
	}

	dx := DifX(i, j)
	dy := DifY(i, j)
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}

	r, s := -dy, -dx
	if dx > 0 {
		r, s = dy, dx
	}

	xi, yi := ToCoords(i)
	xj, yj := ToCoords(j)

	xk, yk := xi-r, yi+s
	xl, yl := xj-r, yj+s
	if !onBoard(xk, yk) || !onBoard(xl, yl) {
		return 0, 0, false
	}

	return ToIndex(xk, yk), ToIndex(xl, yl), true
}

// Sorted returns the pieces in ascending order.
func Sorted(pieces [4]int) [4]int {
	s := pieces
	sort.Ints(s[:])
	return s
}

// IsValidSquare reports whether the four cells are the corners of a square.
func IsValidSquare(pieces [4]int) bool {
	s := Sorted(pieces)

	k, l, ok := CompletionCorners(s[0], s[1])
	if !ok {
		return false
	}

	return (k == s[2] && l == s[3]) || (l == s[2] && k == s[3])
}

// SquareScore returns the score of a square: the vertical span between the lowest
// and the highest index, plus one, squared. Tilted squares are scored by the same
// rule even though the span is not their edge length.
func SquareScore(pieces [4]int) int {
	lo, hi := pieces[0], pieces[0]
	for _, p := range pieces[1:] {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	side := DifY(lo, hi) + 1
	return side * side
}
