package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// GameLogic runs one game at a time between two move sources. It is not safe
// for concurrent use; callers serialize access (see Session).
type GameLogic struct {
	board     *domain.Board
	sources   [2]domain.MoveSource
	verifier  *Verifier
	collector *SquareCollector
	log       *zap.SugaredLogger

	listeners []domain.Listener

	gameID   uuid.UUID
	phase    domain.Phase
	active   *domain.Player
	outcome  domain.Outcome
	lastMove *domain.Move
}

func NewGameLogic(board *domain.Board, source1, source2 domain.MoveSource, verifier *Verifier, log *zap.SugaredLogger) (*GameLogic, error) {
	if board == nil || source1 == nil || source2 == nil || verifier == nil || log == nil {
		return nil, fmt.Errorf("%w: game logic", errs.ErrNilCollaborator)
	}
	p1, p2 := source1.Player(), source2.Player()
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("%w: move source without player", errs.ErrNilCollaborator)
	}
	if p1 == p2 {
		return nil, errs.ErrSamePlayer
	}
	if p1 != board.Player1() || p2 != board.Player2() {
		return nil, fmt.Errorf("%w: source1 must play %s and source2 %s", errs.ErrUnknownPlayer, board.Player1(), board.Player2())
	}

	return &GameLogic{
		board:     board,
		sources:   [2]domain.MoveSource{source1, source2},
		verifier:  verifier,
		collector: NewSquareCollector(),
		log:       log,
		phase:     domain.NotStarted,
		outcome:   domain.NotOverOutcome(),
	}, nil
}

// SetSquareCollector replaces the collector. Start resets it, so squares it
// already holds are only visible until the next game starts.
func (g *GameLogic) SetSquareCollector(c *SquareCollector) {
	if c == nil {
		panic(fmt.Errorf("%w: square collector", errs.ErrNilCollaborator))
	}
	g.collector = c
}

// Start begins a new game with active to move. A running game is abandoned.
func (g *GameLogic) Start(active *domain.Player) {
	if !g.board.Knows(active) {
		panic(fmt.Errorf("%w: %s", errs.ErrUnknownPlayer, active))
	}

	for _, s := range g.sources {
		if c, ok := s.(domain.MoveCanceler); ok {
			c.CancelMove()
		}
	}

	g.gameID = uuid.New()
	g.board.Clear()
	g.collector.Reset()
	g.phase = domain.AwaitingMove
	g.active = active
	g.outcome = domain.NotOverOutcome()
	g.lastMove = nil

	g.log.Infow("game started", "game_id", g.gameID.String(), "active", active.Name())

	for _, l := range g.listeners {
		l.OnGameStarted(active)
	}
	for _, l := range g.listeners {
		l.OnActivePlayerChanged(active)
	}

	g.requestMove()
}

func (g *GameLogic) requestMove() {
	gameID := g.gameID
	g.ActiveSource().RequestMove(g.board, func(index int, player *domain.Player) bool {
		if gameID != g.gameID {
			g.log.Warnw("move for a finished game ignored", "game_id", gameID.String(), "index", index)
			return false
		}
		return g.makeMove(index, player)
	})
}

func (g *GameLogic) makeMove(index int, player *domain.Player) bool {
	switch g.phase {
	case domain.NotStarted:
		panic(errs.ErrGameNotStarted)
	case domain.Over:
		panic(errs.ErrGameOver)
	}
	if player != g.active {
		panic(fmt.Errorf("%w: %s, active is %s", errs.ErrPlayerNotActive, player, g.active))
	}
	geometry.AssertIndex(index)

	if !g.board.IsEmpty(index) {
		return false
	}

	g.board.Place(index, player)
	move := domain.NewMove(index, player)
	g.lastMove = &move

	if found := g.collector.Detect(g.board, player); len(found) > 0 {
		g.log.Debugw("squares found", "player", player.Name(), "count", len(found))
		for _, l := range g.listeners {
			l.OnSquaresFound(player, found)
		}
	}

	outcome := g.verifier.Evaluate(g.board, g.collector)
	if outcome.IsOver() {
		g.phase = domain.Over
		g.outcome = outcome
		g.log.Infow("game over", "game_id", g.gameID.String(), "outcome", outcome.String())
		for _, l := range g.listeners {
			l.OnGameOver(outcome.Winner)
		}
		return true
	}

	g.active = g.board.Opponent(player)
	for _, l := range g.listeners {
		l.OnActivePlayerChanged(g.active)
	}
	g.requestMove()
	return true
}

func (g *GameLogic) Phase() domain.Phase {
	return g.phase
}

// ActivePlayer returns the player to move, or the last one to move once the
// game is over. It is nil before the first game.
func (g *GameLogic) ActivePlayer() *domain.Player {
	return g.active
}

func (g *GameLogic) ActiveSource() domain.MoveSource {
	return g.SourceOf(g.active)
}

// SourceOf returns the move source of player or nil.
func (g *GameLogic) SourceOf(player *domain.Player) domain.MoveSource {
	for _, s := range g.sources {
		if s.Player() == player {
			return s
		}
	}
	return nil
}

func (g *GameLogic) Outcome() domain.Outcome {
	return g.outcome
}

func (g *GameLogic) IsStarted() bool {
	return g.phase != domain.NotStarted
}

func (g *GameLogic) Board() domain.ReadOnlyBoard {
	return g.board
}

func (g *GameLogic) Squares() []domain.Square {
	return g.collector.Squares()
}

func (g *GameLogic) Score(player *domain.Player) int {
	return g.collector.Score(player)
}

func (g *GameLogic) SquareCount(player *domain.Player) int {
	return g.collector.Count(player)
}

// GameID returns the id of the current game or an empty string before the first one.
func (g *GameLogic) GameID() string {
	if g.gameID == uuid.Nil {
		return ""
	}
	return g.gameID.String()
}

// Player looks up a player of the board by name.
func (g *GameLogic) Player(name string) (*domain.Player, bool) {
	for _, p := range []*domain.Player{g.board.Player1(), g.board.Player2()} {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

func (g *GameLogic) Snapshot() domain.State {
	state := domain.NewState(g.board, g.collector.Squares())
	state.GameID = g.GameID()
	state.Phase = g.phase.String()
	state.LastMove = g.lastMove
	state.MinScore = g.verifier.MinScore()
	state.MinLead = g.verifier.MinLead()
	switch g.phase {
	case domain.AwaitingMove:
		state.ActivePlayer = g.active.Name()
	case domain.Over:
		if g.outcome.Kind == domain.Draw {
			state.Draw = true
		} else {
			state.Winner = g.outcome.Winner.Name()
		}
	}
	return state
}

// AddListener registers l for game and board notifications, delivered in
// registration order. Pass pointers so that l can be removed later.
func (g *GameLogic) AddListener(l domain.Listener) {
	if l == nil {
		panic(fmt.Errorf("%w: game listener", errs.ErrNilCollaborator))
	}
	g.listeners = append(g.listeners, l)
	g.board.AddListener(l)
}

// RemoveListener unregisters l from the game and the board. Listeners are
// matched with domain.SameListener.
func (g *GameLogic) RemoveListener(l domain.Listener) {
	for i, existing := range g.listeners {
		if domain.SameListener(existing, l) {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			break
		}
	}
	g.board.RemoveListener(l)
}
