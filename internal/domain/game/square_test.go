package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "quadratum/internal/errors"
)

func TestNewSquare_Normalizes(t *testing.T) {
	a := NewPlayer("A")

	s1 := NewSquare([4]int{62, 1, 48, 15}, a)
	s2 := NewSquare([4]int{1, 15, 48, 62}, a)

	assert.Equal(t, [4]int{1, 15, 48, 62}, s1.Pieces)
	assert.Equal(t, 64, s1.Score)
	assert.Equal(t, s1, s2)

	set := map[Square]struct{}{s1: {}}
	_, ok := set[s2]
	assert.True(t, ok)

	_, ok = set[NewSquare([4]int{1, 15, 48, 62}, NewPlayer("A"))]
	assert.False(t, ok, "squares of different players must differ")
}

func TestNewSquare_Violations(t *testing.T) {
	a := NewPlayer("A")

	err := recoverError(t, func() { NewSquare([4]int{0, 1, 2, 3}, a) })
	assert.ErrorIs(t, err, errs.ErrInvalidSquare)

	err = recoverError(t, func() { NewSquare([4]int{0, 1, 8, 9}, nil) })
	assert.ErrorIs(t, err, errs.ErrNilCollaborator)
}

func TestSquare_View(t *testing.T) {
	a := NewPlayer("A")
	view := NewSquare([4]int{0, 1, 8, 9}, a).View()
	assert.Equal(t, SquareView{Player: "A", Pieces: [4]int{0, 1, 8, 9}, Score: 4}, view)
}

func TestNewPlayer_EmptyName(t *testing.T) {
	err := recoverError(t, func() { NewPlayer("") })
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestNewState(t *testing.T) {
	board, a, b := newTestBoard(t)
	for _, i := range []int{0, 1, 8, 9} {
		board.Place(i, a)
	}
	board.Place(20, b)

	state := NewState(board, []Square{NewSquare([4]int{0, 1, 8, 9}, a)})

	assert.Equal(t, [2]string{"A", "B"}, state.Players)
	assert.Equal(t, "A", state.Cells[9])
	assert.Equal(t, "B", state.Cells[20])
	assert.Equal(t, "", state.Cells[63])
	assert.Equal(t, map[string]int{"A": 4, "B": 0}, state.Scores)
	assert.Equal(t, map[string]int{"A": 1, "B": 0}, state.SquareCounts)
	assert.Len(t, state.Squares, 1)
}

func TestEvents(t *testing.T) {
	a := NewPlayer("A")

	placed := PiecePlacedEvent(7, a)
	assert.Equal(t, EventPiecePlaced, placed.Type)
	if assert.NotNil(t, placed.Index) {
		assert.Equal(t, 7, *placed.Index)
	}

	draw := GameOverEvent(nil)
	assert.True(t, draw.Draw)
	assert.Empty(t, draw.Winner)

	win := GameOverEvent(a)
	assert.False(t, win.Draw)
	assert.Equal(t, "A", win.Winner)
}
