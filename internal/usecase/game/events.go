package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
)

const publishTimeout = 2 * time.Second

// EventSink receives the wire events of a game.
type EventSink interface {
	Publish(ctx context.Context, event domain.Event) error
}

// GameIDSource gives the id of the running game.
type GameIDSource interface {
	GameID() string
}

// EventBridge turns game notifications into events and fans them out to its
// sinks. Sink errors are logged and dropped.
type EventBridge struct {
	ids   GameIDSource
	sinks []EventSink
	log   *zap.SugaredLogger
	now   func() time.Time
	seq   uint64
}

func NewEventBridge(ids GameIDSource, log *zap.SugaredLogger, sinks ...EventSink) *EventBridge {
	return &EventBridge{
		ids:   ids,
		sinks: sinks,
		log:   log,
		now:   time.Now,
	}
}

func (b *EventBridge) AddSink(sink EventSink) {
	b.sinks = append(b.sinks, sink)
}

func (b *EventBridge) publish(event domain.Event) {
	b.seq++
	event.GameID = b.ids.GameID()
	event.Seq = b.seq
	event.At = b.now().UTC()

	for _, sink := range b.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := sink.Publish(ctx, event); err != nil {
			b.log.Errorw("publish event", "type", string(event.Type), "seq", event.Seq, "error", err)
		}
		cancel()
	}
}

func (b *EventBridge) OnPiecePlaced(index int, player *domain.Player) {
	b.publish(domain.PiecePlacedEvent(index, player))
}

func (b *EventBridge) OnBoardCleared() {
	b.publish(domain.BoardClearedEvent())
}

func (b *EventBridge) OnGameStarted(active *domain.Player) {
	b.publish(domain.GameStartedEvent(active))
}

func (b *EventBridge) OnActivePlayerChanged(active *domain.Player) {
	b.publish(domain.ActivePlayerChangedEvent(active))
}

func (b *EventBridge) OnSquaresFound(player *domain.Player, squares []domain.Square) {
	b.publish(domain.SquaresFoundEvent(player, squares))
}

func (b *EventBridge) OnGameOver(winner *domain.Player) {
	b.publish(domain.GameOverEvent(winner))
}
