package game

import (
	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
)

// LogListener writes every game notification to the log.
type LogListener struct {
	log *zap.SugaredLogger
}

func NewLogListener(log *zap.SugaredLogger) *LogListener {
	return &LogListener{log: log}
}

func (l *LogListener) OnPiecePlaced(index int, player *domain.Player) {
	l.log.Debugw("piece placed", "player", player.Name(), "index", index)
}

func (l *LogListener) OnBoardCleared() {
	l.log.Debugw("board cleared")
}

func (l *LogListener) OnGameStarted(active *domain.Player) {
	l.log.Infow("game started", "active", active.Name())
}

func (l *LogListener) OnActivePlayerChanged(active *domain.Player) {
	l.log.Debugw("active player changed", "active", active.Name())
}

func (l *LogListener) OnSquaresFound(player *domain.Player, squares []domain.Square) {
	pieces := make([][4]int, 0, len(squares))
	score := 0
	for _, s := range squares {
		pieces = append(pieces, s.Pieces)
		score += s.Score
	}
	l.log.Infow("squares found", "player", player.Name(), "squares", pieces, "score", score)
}

func (l *LogListener) OnGameOver(winner *domain.Player) {
	if winner == nil {
		l.log.Infow("game over", "result", "draw")
		return
	}
	l.log.Infow("game over", "result", "win", "winner", winner.Name())
}
