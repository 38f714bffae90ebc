package game

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"quadratum/internal/bootstrap"
	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
	"quadratum/internal/usecase/players"
)

// Session is the single game served by the application. Every method holds
// the session lock, so bot moves and listeners run under it too.
type Session struct {
	mu    sync.Mutex
	logic *GameLogic
	log   *zap.SugaredLogger
}

func NewSession(cfg bootstrap.Config, log *zap.SugaredLogger, listeners ...domain.Listener) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p1 := domain.NewPlayer(cfg.Player1Name)
	p2 := domain.NewPlayer(cfg.Player2Name)

	board, err := domain.NewBoard(p1, p2)
	if err != nil {
		return nil, err
	}

	seeds := botSeeds(cfg.BotSeed, time.Now)
	source1, err := newMoveSource(cfg, cfg.Player1Kind, p1, seeds[0], log)
	if err != nil {
		return nil, err
	}
	source2, err := newMoveSource(cfg, cfg.Player2Kind, p2, seeds[1], log)
	if err != nil {
		return nil, err
	}

	verifier, err := NewVerifier(cfg.MinScore, cfg.MinLead)
	if err != nil {
		return nil, err
	}

	logic, err := NewGameLogic(board, source1, source2, verifier, log)
	if err != nil {
		return nil, err
	}
	for _, l := range listeners {
		logic.AddListener(l)
	}

	return &Session{logic: logic, log: log}, nil
}

// botSeeds returns the coin seeds of the two players. A zero seed is replaced
// by one taken from now. The second player gets the first seed plus one.
func botSeeds(seed uint64, now func() time.Time) [2]uint64 {
	if seed == 0 {
		seed = uint64(now().UnixNano()) | 1
	}
	return [2]uint64{seed, seed + 1}
}

func newMoveSource(cfg bootstrap.Config, kind string, player *domain.Player, seed uint64, log *zap.SugaredLogger) (domain.MoveSource, error) {
	switch kind {
	case bootstrap.KindHuman:
		return players.NewHuman(player, log), nil
	case bootstrap.KindBot:
		strategy, err := players.ParseStrategy(cfg.BotStrategy)
		if err != nil {
			return nil, err
		}
		return players.NewBot(player, strategy, log,
			players.WithRandomizeTies(cfg.BotRandomizeTies),
			players.WithRandom(players.NewSeededCoin(seed)),
		), nil
	}
	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownKind, kind)
}

// Start begins a new game with the named player to move. With two bots the
// whole game is played before Start returns.
func (s *Session) Start(firstPlayer string) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.logic.Player(firstPlayer)
	if !ok {
		return domain.State{}, fmt.Errorf("%w: %q", errs.ErrUnknownPlayer, firstPlayer)
	}

	s.logic.Start(player)
	return s.logic.Snapshot(), nil
}

// Submit plays index for the human whose turn it is. accepted is false if the
// cell is taken.
func (s *Session) Submit(index int) (accepted bool, state domain.State, err error) {
	if !geometry.IsIndex(index) {
		return false, domain.State{}, fmt.Errorf("%w: %d", errs.ErrIndexOutOfRange, index)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.logic.Phase() {
	case domain.NotStarted:
		return false, s.logic.Snapshot(), errs.ErrGameNotStarted
	case domain.Over:
		return false, s.logic.Snapshot(), errs.ErrGameOver
	}

	human, ok := s.logic.ActiveSource().(*players.Human)
	if !ok {
		return false, s.logic.Snapshot(), errs.ErrNotHumanTurn
	}

	accepted = human.Submit(index)
	if !accepted {
		s.log.Infow("move rejected", "player", human.Player().Name(), "index", index)
	}
	return accepted, s.logic.Snapshot(), nil
}

func (s *Session) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logic.Snapshot()
}

// AddListener registers l with the game.
func (s *Session) AddListener(l domain.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logic.AddListener(l)
}

// Logic returns the game core. Outside of listeners it must not be used
// concurrently with the session.
func (s *Session) Logic() *GameLogic {
	return s.logic
}
