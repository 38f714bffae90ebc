// Package geometry maps cell indexes of the 8x8 board to coordinates and derives
// squares from pairs of cells.
package geometry

import (
	"fmt"

	errs "quadratum/internal/errors"
)

const (
	// Size is the length of one board edge.
	Size = 8
	// Cells is the number of cells on the board.
	Cells = Size * Size
)

// IsIndex reports whether index addresses a cell of the board.
func IsIndex(index int) bool {
	return index >= 0 && index < Cells
}

// AssertIndex panics if index is not between 0 and 63.
func AssertIndex(index int) {
	if !IsIndex(index) {
		panic(fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, index))
	}
}

func ToIndex(x, y int) int {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		panic(fmt.Errorf("%w: x=%d y=%d", errs.ErrIndexOutOfRange, x, y))
	}
	return y*Size + x
}

func ToCoords(index int) (x, y int) {
	AssertIndex(index)
	return index % Size, index / Size
}

// DifX returns x(index2) - x(index1).
func DifX(index1, index2 int) int {
	x1, _ := ToCoords(index1)
	x2, _ := ToCoords(index2)
	return x2 - x1
}

// DifY returns y(index2) - y(index1).
func DifY(index1, index2 int) int {
	_, y1 := ToCoords(index1)
	_, y2 := ToCoords(index2)
	return y2 - y1
}

func onBoard(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}
