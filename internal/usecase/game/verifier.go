package game

import (
	"fmt"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// ScoreSource gives the current score of a player.
type ScoreSource interface {
	Score(player *domain.Player) int
}

// Verifier decides whether a game is over.
type Verifier struct {
	minScore int
	minLead  int
}

func NewVerifier(minScore, minLead int) (*Verifier, error) {
	if minScore <= 0 {
		return nil, fmt.Errorf("%w: min score must be positive, got %d", errs.ErrInvalidConfig, minScore)
	}
	if minLead <= 0 {
		return nil, fmt.Errorf("%w: min lead must be positive, got %d", errs.ErrInvalidConfig, minLead)
	}
	return &Verifier{minScore: minScore, minLead: minLead}, nil
}

func (v *Verifier) MinScore() int {
	return v.minScore
}

func (v *Verifier) MinLead() int {
	return v.minLead
}

// Evaluate returns the outcome of the position. A player wins early by reaching
// the minimum score with the minimum lead. Otherwise the game ends once no
// player who is behind or level can still complete a square.
func (v *Verifier) Evaluate(board domain.ReadOnlyBoard, scores ScoreSource) domain.Outcome {
	if board == nil || scores == nil {
		panic(fmt.Errorf("%w: evaluate needs a board and scores", errs.ErrNilCollaborator))
	}

	a, b := board.Player1(), board.Player2()
	scoreA, scoreB := scores.Score(a), scores.Score(b)

	if max(scoreA, scoreB) >= v.minScore {
		if scoreA-scoreB >= v.minLead {
			return domain.WinOutcome(a)
		}
		if scoreB-scoreA >= v.minLead {
			return domain.WinOutcome(b)
		}
	}

	canA, canB := false, false
	for i := 0; i < geometry.Cells-geometry.Size-1; i++ {
		for j := i + 1; j < geometry.Cells; j++ {
			k, l, ok := geometry.CompletionCorners(i, j)
			if !ok {
				continue
			}
			hasA, hasB, hasEmpty := false, false, false
			for _, cell := range [4]int{i, j, k, l} {
				switch board.Piece(cell) {
				case nil:
					hasEmpty = true
				case a:
					hasA = true
				case b:
					hasB = true
				}
			}
			if !hasEmpty {
				continue
			}
			switch {
			case !hasA && !hasB:
				return domain.NotOverOutcome()
			case hasA && !hasB:
				canA = true
			case hasB && !hasA:
				canB = true
			}
			if canA && canB {
				return domain.NotOverOutcome()
			}
		}
	}

	switch {
	case !canA && !canB:
		return byScore(a, b, scoreA, scoreB)
	case canA:
		if scoreA > scoreB {
			return domain.WinOutcome(a)
		}
	case canB:
		if scoreB > scoreA {
			return domain.WinOutcome(b)
		}
	}
	return domain.NotOverOutcome()
}

func byScore(a, b *domain.Player, scoreA, scoreB int) domain.Outcome {
	switch {
	case scoreA > scoreB:
		return domain.WinOutcome(a)
	case scoreB > scoreA:
		return domain.WinOutcome(b)
	}
	return domain.DrawOutcome()
}
