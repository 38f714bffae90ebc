package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "quadratum/internal/errors"
)

func TestToIndexAndCoords(t *testing.T) {
	assert.Equal(t, 0, ToIndex(0, 0))
	assert.Equal(t, 63, ToIndex(7, 7))
	assert.Equal(t, 10, ToIndex(2, 1))

	x, y := ToCoords(10)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestToCoords_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 64, 100} {
		assert.PanicsWithError(t, fmt.Sprintf("index must be between 0 and 63: %d", index), func() {
			ToCoords(index)
		})
	}
}

func TestDifXY(t *testing.T) {
	assert.Equal(t, 3, DifX(9, 20))
	assert.Equal(t, 1, DifY(9, 20))
	assert.Equal(t, -1, DifX(1, 8))
	assert.Equal(t, 1, DifY(1, 8))
}

func TestCompletionCorners(t *testing.T) {
	cases := []struct {
		name     string
		i, j     int
		k, l     int
		expectOk bool
	}{
		{name: "unit square", i: 0, j: 1, k: 8, l: 9, expectOk: true},
		{name: "tilted square", i: 9, j: 20, k: 32, l: 43, expectOk: true},
		{name: "falls off the board", i: 62, j: 63},
		{name: "same cell", i: 5, j: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, l, ok := CompletionCorners(tc.i, tc.j)
			require.Equal(t, tc.expectOk, ok)
			if ok {
				assert.Equal(t, tc.k, k)
				assert.Equal(t, tc.l, l)
			}
		})
	}
}

func TestCompletionCorners_WrongOrder(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, errs.ErrIndexOrder)
	}()
	CompletionCorners(7, 1)
}

func TestCompletionCorners_AlwaysFormValidSquares(t *testing.T) {
	pairs := 0
	squares := make(map[[4]int]int)

	for i := 0; i < Cells; i++ {
		for j := i + 1; j < Cells; j++ {
			k, l, ok := CompletionCorners(i, j)
			if !ok {
				continue
			}
			pairs++

			pieces := [4]int{i, j, k, l}
			require.True(t, IsValidSquare(pieces), "pieces %v", pieces)
			for _, p := range pieces {
				require.True(t, IsIndex(p))
			}
			seen := map[int]bool{}
			for _, p := range pieces {
				seen[p] = true
			}
			require.Len(t, seen, 4, "pieces %v", pieces)

			squares[Sorted(pieces)]++
		}
	}

	assert.Equal(t, 672, pairs)
	assert.Len(t, squares, 336)
	for pieces, n := range squares {
		assert.Equal(t, 2, n, "square %v", pieces)
	}
}

func TestIsValidSquare(t *testing.T) {
	valid := [][4]int{
		{9, 19, 24, 34},
		{36, 39, 60, 63},
		{1, 15, 48, 62},
		{9, 10, 17, 18},
		{0, 1, 8, 9},
		{1, 8, 10, 17},
		{34, 24, 19, 9},
	}
	for _, pieces := range valid {
		assert.True(t, IsValidSquare(pieces), "pieces %v", pieces)
	}

	invalid := [][4]int{
		{1, 2, 3, 4},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{15, 15, 15, 15},
		{1, 15, 40, 62},
	}
	for _, pieces := range invalid {
		assert.False(t, IsValidSquare(pieces), "pieces %v", pieces)
	}
}

func TestSquareScore(t *testing.T) {
	cases := map[[4]int]int{
		{1, 15, 48, 62}:  64,
		{1, 4, 25, 28}:   16,
		{27, 32, 52, 57}: 25,
		{16, 21, 56, 61}: 36,
		{8, 14, 56, 62}:  49,
		{6, 8, 55, 57}:   64,
		{0, 1, 8, 9}:     4,
	}
	for pieces, score := range cases {
		assert.Equal(t, score, SquareScore(pieces), "pieces %v", pieces)
	}
}

func TestSquareScore_PermutationInvariant(t *testing.T) {
	pieces := [4]int{29, 34, 54, 59}
	want := SquareScore(pieces)
	require.Equal(t, 25, want)

	permute(pieces, 0, func(p [4]int) {
		assert.Equal(t, want, SquareScore(p), "permutation %v", p)
	})
}

func permute(p [4]int, k int, visit func([4]int)) {
	if k == len(p) {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		permute(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}
