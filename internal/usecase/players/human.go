package players

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/geometry"
)

// Human is a move source fed from outside, one pending request at a time.
type Human struct {
	player *domain.Player
	log    *zap.SugaredLogger

	mu       sync.Mutex
	awaiting bool
	callback domain.MoveCallback
	// request counts RequestMove and CancelMove calls so that a rejected
	// submit does not re-arm a request that has been replaced.
	request  uint64
}

func NewHuman(player *domain.Player, log *zap.SugaredLogger) *Human {
	if player == nil || log == nil {
		panic(fmt.Errorf("%w: human needs a player and a logger", errs.ErrNilCollaborator))
	}
	return &Human{
		player: player,
		log:    log,
	}
}

func (h *Human) Player() *domain.Player {
	return h.player
}

func (h *Human) RequestMove(_ domain.ReadOnlyBoard, callback domain.MoveCallback) {
	if callback == nil {
		panic(fmt.Errorf("%w: human move callback", errs.ErrNilCollaborator))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.request++
	h.callback = callback
	h.awaiting = true
}

// Submit hands index to the pending request and returns the callback's answer.
// It returns false without calling anything if no move is awaited.
//
// A rejected move does not use up the request: once the callback returns false
// the gate is armed again with the same callback, so the human can retry
// another cell without a new RequestMove. The exception is a request replaced
// or cancelled while the callback ran, which is left as it is.
func (h *Human) Submit(index int) bool {
	geometry.AssertIndex(index)

	h.mu.Lock()
	if !h.awaiting {
		h.mu.Unlock()
		return false
	}
	callback, request := h.callback, h.request
	h.awaiting = false
	h.mu.Unlock()

	// The callback may request the next move from this gate.
	accepted := callback(index, h.player)
	if accepted {
		return true
	}

	h.log.Debugw("human move rejected", "player", h.player.Name(), "index", index)

	h.mu.Lock()
	if h.request == request && !h.awaiting {
		h.awaiting = true
	}
	h.mu.Unlock()
	return false
}

func (h *Human) IsAwaiting() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.awaiting
}

// CancelMove drops the pending request, if any.
func (h *Human) CancelMove() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.request++
	h.callback = nil
	h.awaiting = false
}
