package game

import (
	"fmt"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// SquareCollector is the registry of the squares found in the current game.
type SquareCollector struct {
	known   map[domain.Square]struct{}
	squares []domain.Square
}

func NewSquareCollector() *SquareCollector {
	return &SquareCollector{
		known: make(map[domain.Square]struct{}),
	}
}

// Detect returns the squares of player that are on the board but not yet in the
// registry, in discovery order, and registers them.
func (c *SquareCollector) Detect(board domain.ReadOnlyBoard, player *domain.Player) []domain.Square {
	if board == nil || player == nil {
		panic(fmt.Errorf("%w: detect needs a board and a player", errs.ErrNilCollaborator))
	}

	var found []domain.Square
	for i := 0; i < geometry.Cells-geometry.Size-1; i++ {
		if board.Piece(i) != player {
			continue
		}
		for j := i + 1; j < geometry.Cells; j++ {
			if board.Piece(j) != player {
				continue
			}
			k, l, ok := geometry.CompletionCorners(i, j)
			if !ok || board.Piece(k) != player || board.Piece(l) != player {
				continue
			}
			square := domain.NewSquare([4]int{i, j, k, l}, player)
			if _, seen := c.known[square]; seen {
				continue
			}
			c.known[square] = struct{}{}
			c.squares = append(c.squares, square)
			found = append(found, square)
		}
	}
	return found
}

func (c *SquareCollector) Score(player *domain.Player) int {
	score := 0
	for _, s := range c.squares {
		if s.Player == player {
			score += s.Score
		}
	}
	return score
}

func (c *SquareCollector) Count(player *domain.Player) int {
	count := 0
	for _, s := range c.squares {
		if s.Player == player {
			count++
		}
	}
	return count
}

// Squares returns a copy of the registry in discovery order.
func (c *SquareCollector) Squares() []domain.Square {
	return append([]domain.Square(nil), c.squares...)
}

func (c *SquareCollector) Reset() {
	c.known = make(map[domain.Square]struct{})
	c.squares = nil
}
