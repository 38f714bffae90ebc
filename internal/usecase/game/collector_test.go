package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
)

func newBoard(t *testing.T) (*domain.Board, *domain.Player, *domain.Player) {
	t.Helper()
	a, b := domain.NewPlayer("A"), domain.NewPlayer("B")
	board, err := domain.NewBoard(a, b)
	require.NoError(t, err)
	return board, a, b
}

func place(board *domain.Board, player *domain.Player, cells ...int) {
	for _, c := range cells {
		board.Place(c, player)
	}
}

func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		err = e
	}()
	f()
	return nil
}

func TestSquareCollector_DetectOnce(t *testing.T) {
	board, a, b := newBoard(t)
	collector := NewSquareCollector()

	place(board, a, 1, 15, 48)
	place(board, b, 34, 59)
	assert.Empty(t, collector.Detect(board, a))

	place(board, a, 62)
	found := collector.Detect(board, a)
	require.Len(t, found, 1)
	assert.Equal(t, domain.NewSquare([4]int{1, 15, 48, 62}, a), found[0])
	assert.Equal(t, 64, collector.Score(a))
	assert.Equal(t, 1, collector.Count(a))

	assert.Empty(t, collector.Detect(board, a), "a known square must not be reported again")
	assert.Empty(t, collector.Detect(board, b))
	assert.Equal(t, 0, collector.Score(b))
	assert.Equal(t, 0, collector.Count(b))
}

func TestSquareCollector_Block(t *testing.T) {
	board, a, _ := newBoard(t)
	collector := NewSquareCollector()

	place(board, a, 0, 1, 2, 8, 9, 10, 16, 17, 18)
	found := collector.Detect(board, a)

	// four unit squares, the 3x3 frame and the tilted square 1, 8, 10, 17
	assert.Len(t, found, 6)
	assert.Equal(t, 6, collector.Count(a))
	assert.Equal(t, 4*4+9+9, collector.Score(a))
	assert.Contains(t, found, domain.NewSquare([4]int{1, 8, 10, 17}, a))

	seen := make(map[domain.Square]int)
	for _, s := range found {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "square %s reported twice", s)
	}
}

func TestSquareCollector_SquaresAndReset(t *testing.T) {
	board, a, b := newBoard(t)
	collector := NewSquareCollector()

	place(board, a, 0, 1, 8, 9)
	place(board, b, 29, 34, 54, 59)
	collector.Detect(board, b)
	collector.Detect(board, a)

	squares := collector.Squares()
	require.Len(t, squares, 2)
	assert.Same(t, b, squares[0].Player)
	assert.Same(t, a, squares[1].Player)
	assert.Equal(t, len(squares), collector.Count(a)+collector.Count(b))

	squares[0] = domain.Square{}
	assert.Same(t, b, collector.Squares()[0].Player, "Squares must return a copy")

	collector.Reset()
	assert.Empty(t, collector.Squares())
	assert.Equal(t, 0, collector.Score(a))
	assert.Equal(t, 0, collector.Count(b))

	assert.Len(t, collector.Detect(board, a), 1, "reset squares are found again")
}

func TestSquareCollector_NilArguments(t *testing.T) {
	board, _, _ := newBoard(t)
	collector := NewSquareCollector()

	err := recoverError(t, func() { collector.Detect(board, nil) })
	assert.ErrorIs(t, err, errs.ErrNilCollaborator)

	err = recoverError(t, func() { collector.Detect(nil, domain.NewPlayer("A")) })
	assert.ErrorIs(t, err, errs.ErrNilCollaborator)
}
