package game

import (
	"fmt"

	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// ReadOnlyBoard is the view of the board handed to move sources.
type ReadOnlyBoard interface {
	Player1() *Player
	Player2() *Player
	Piece(index int) *Player
	IsEmpty(index int) bool
}

// Board holds the pieces of a game. It has no game logic; the only mutation is
// Place, which requires an empty cell.
type Board struct {
	player1   *Player
	player2   *Player
	cells     [geometry.Cells]*Player
	listeners []BoardListener
}

func NewBoard(player1, player2 *Player) (*Board, error) {
	if player1 == nil || player2 == nil {
		return nil, fmt.Errorf("%w: board players", errs.ErrNilCollaborator)
	}
	if player1 == player2 {
		return nil, errs.ErrSamePlayer
	}
	return &Board{
		player1: player1,
		player2: player2,
	}, nil
}

func (b *Board) Player1() *Player {
	return b.player1
}

func (b *Board) Player2() *Player {
	return b.player2
}

// Knows reports whether p is one of the two players of the board.
func (b *Board) Knows(p *Player) bool {
	return p != nil && (p == b.player1 || p == b.player2)
}

// Opponent returns the other player of the board.
func (b *Board) Opponent(p *Player) *Player {
	if p == b.player1 {
		return b.player2
	}
	return b.player1
}

// Piece returns the owner of the cell or nil if it is empty.
func (b *Board) Piece(index int) *Player {
	geometry.AssertIndex(index)
	return b.cells[index]
}

func (b *Board) IsEmpty(index int) bool {
	return b.Piece(index) == nil
}

// EmptyCells returns the number of empty cells.
func (b *Board) EmptyCells() int {
	n := 0
	for _, c := range b.cells {
		if c == nil {
			n++
		}
	}
	return n
}

// Place puts a piece of player on the empty cell index.
func (b *Board) Place(index int, player *Player) {
	geometry.AssertIndex(index)
	if !b.Knows(player) {
		panic(fmt.Errorf("%w: %s", errs.ErrUnknownPlayer, player))
	}
	if b.cells[index] != nil {
		panic(fmt.Errorf("%w: %d", errs.ErrCellOccupied, index))
	}

	b.cells[index] = player

	for _, l := range b.listeners {
		l.OnPiecePlaced(index, player)
	}
}

func (b *Board) Clear() {
	b.cells = [geometry.Cells]*Player{}

	for _, l := range b.listeners {
		l.OnBoardCleared()
	}
}

func (b *Board) AddListener(l BoardListener) {
	if l == nil {
		panic(fmt.Errorf("%w: board listener", errs.ErrNilCollaborator))
	}
	b.listeners = append(b.listeners, l)
}

// RemoveListener unregisters l. See SameListener for how listeners are matched.
func (b *Board) RemoveListener(l BoardListener) {
	for i, existing := range b.listeners {
		if SameListener(existing, l) {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{player1=%s, player2=%s, empty=%d}", b.player1, b.player2, b.EmptyCells())
}
