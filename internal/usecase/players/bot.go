package players

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// Strategy tells how the bot merges the value of a square into its heat maps.
type Strategy int

const (
	// Accumulate adds up the values of every square a cell belongs to.
	Accumulate Strategy = iota
	// TakeMax keeps the value of the best square a cell belongs to.
	TakeMax
)

func (s Strategy) String() string {
	switch s {
	case Accumulate:
		return "accumulate"
	case TakeMax:
		return "take_max"
	}
	return "unknown"
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "accumulate", "long_term":
		return Accumulate, nil
	case "take_max", "short_term":
		return TakeMax, nil
	}
	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownStrategy, name)
}

// Coin is the random source used to break ties.
type Coin interface {
	Flip() bool
}

type seededCoin struct {
	rnd *rand.Rand
}

// NewSeededCoin returns a fair coin. A zero seed is replaced by the current time.
func NewSeededCoin(seed uint64) Coin {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &seededCoin{rnd: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (c *seededCoin) Flip() bool {
	return c.rnd.IntN(2) == 0
}

type BotOption func(*Bot)

func WithRandomizeTies(randomize bool) BotOption {
	return func(b *Bot) {
		b.randomizeTies = randomize
	}
}

func WithRandom(coin Coin) BotOption {
	return func(b *Bot) {
		b.coin = coin
	}
}

// Bot is a move source that picks the cell with the highest heat.
type Bot struct {
	player        *domain.Player
	strategy      Strategy
	randomizeTies bool
	coin          Coin
	log           *zap.SugaredLogger
}

func NewBot(player *domain.Player, strategy Strategy, log *zap.SugaredLogger, opts ...BotOption) *Bot {
	if player == nil || log == nil {
		panic(fmt.Errorf("%w: bot needs a player and a logger", errs.ErrNilCollaborator))
	}
	b := &Bot{
		player:        player,
		strategy:      strategy,
		randomizeTies: true,
		log:           log,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.coin == nil {
		b.coin = NewSeededCoin(0)
	}
	return b
}

func (b *Bot) Player() *domain.Player {
	return b.player
}

func (b *Bot) Strategy() Strategy {
	return b.strategy
}

// RequestMove picks a cell and commits it at once.
func (b *Bot) RequestMove(board domain.ReadOnlyBoard, callback domain.MoveCallback) {
	if board == nil || callback == nil {
		panic(fmt.Errorf("%w: bot move request", errs.ErrNilCollaborator))
	}

	index := b.ChooseMove(board)
	b.log.Debugw("bot move chosen", "player", b.player.Name(), "strategy", b.strategy.String(), "index", index)

	if !callback(index, b.player) {
		b.log.Warnw("bot move rejected", "player", b.player.Name(), "index", index)
	}
}

// ChooseMove returns the empty cell with the highest value in either heat map.
// Ties go to the first such cell unless tie randomization is on, in which case
// every later tied cell takes over on a successful coin flip.
func (b *Bot) ChooseMove(board domain.ReadOnlyBoard) int {
	self, opp := b.heatMaps(board)

	best, bestValue := -1, -1
	for i := 0; i < geometry.Cells; i++ {
		if !board.IsEmpty(i) {
			continue
		}
		v := max(self[i], opp[i])
		if v > bestValue || (v == bestValue && b.randomizeTies && b.coin.Flip()) {
			best, bestValue = i, v
		}
	}

	if best < 0 {
		panic(fmt.Errorf("%w: %s", errs.ErrNoEmptyCell, b.player))
	}
	return best
}

func (b *Bot) heatMaps(board domain.ReadOnlyBoard) (self, opp [geometry.Cells]int) {
	for i := 0; i < geometry.Cells-geometry.Size-1; i++ {
		for j := i + 1; j < geometry.Cells; j++ {
			k, l, ok := geometry.CompletionCorners(i, j)
			if !ok {
				continue
			}
			cells := [4]int{i, j, k, l}

			selfCount, oppCount := 0, 0
			for _, cell := range cells {
				switch p := board.Piece(cell); {
				case p == nil:
				case p == b.player:
					selfCount++
				default:
					oppCount++
				}
			}

			score := geometry.SquareScore(cells)
			switch {
			case oppCount > 0 && selfCount == 0:
				b.merge(&opp, cells, score*(oppCount+1))
			case oppCount == 0:
				b.merge(&self, cells, score*(selfCount+1))
			}
		}
	}
	return self, opp
}

func (b *Bot) merge(heat *[geometry.Cells]int, cells [4]int, value int) {
	for _, cell := range cells {
		if b.strategy == TakeMax {
			heat[cell] = max(heat[cell], value)
		} else {
			heat[cell] += value
		}
	}
}
