package game

import (
	"fmt"

	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// Square is a scored square of one player. Pieces are sorted, so two squares are
// equal (and usable as the same map key) iff they have the same player and pieces.
type Square struct {
	Player *Player
	Pieces [4]int
	Score  int
}

func NewSquare(pieces [4]int, player *Player) Square {
	if player == nil {
		panic(fmt.Errorf("%w: square player", errs.ErrNilCollaborator))
	}
	if !geometry.IsValidSquare(pieces) {
		panic(fmt.Errorf("%w: %v", errs.ErrInvalidSquare, pieces))
	}
	sorted := geometry.Sorted(pieces)
	return Square{
		Player: player,
		Pieces: sorted,
		Score:  geometry.SquareScore(sorted),
	}
}

func (s Square) View() SquareView {
	return SquareView{
		Player: nameOf(s.Player),
		Pieces: s.Pieces,
		Score:  s.Score,
	}
}

func (s Square) String() string {
	return fmt.Sprintf("Square{player=%s, pieces=%d,%d,%d,%d, score=%d}",
		s.Player, s.Pieces[0], s.Pieces[1], s.Pieces[2], s.Pieces[3], s.Score)
}

func viewsOf(squares []Square) []SquareView {
	views := make([]SquareView, 0, len(squares))
	for _, s := range squares {
		views = append(views, s.View())
	}
	return views
}
