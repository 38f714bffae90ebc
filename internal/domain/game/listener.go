package game

import "reflect"

// BoardListener receives the changes of a Board.
type BoardListener interface {
	OnPiecePlaced(index int, player *Player)
	OnBoardCleared()
}

// Listener receives every notification of a game in causal order: for one move
// OnPiecePlaced comes before OnSquaresFound, which comes before OnGameOver or
// OnActivePlayerChanged.
type Listener interface {
	BoardListener
	OnGameStarted(active *Player)
	OnActivePlayerChanged(active *Player)
	OnSquaresFound(player *Player, squares []Square)
	// OnGameOver is called with a nil winner if the game is a draw.
	OnGameOver(winner *Player)
}

// SameListener reports whether a and b are the same listener. Listeners of a
// type that does not support == (a struct holding a slice, say) never match, so
// they can not be removed; register them by pointer instead.
func SameListener(a, b BoardListener) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// NopListener implements Listener with empty methods. Embed it to implement only
// the notifications you need.
type NopListener struct{}

func (NopListener) OnPiecePlaced(int, *Player)       {}
func (NopListener) OnBoardCleared()                  {}
func (NopListener) OnGameStarted(*Player)            {}
func (NopListener) OnActivePlayerChanged(*Player)    {}
func (NopListener) OnSquaresFound(*Player, []Square) {}
func (NopListener) OnGameOver(*Player)               {}

// MoveCallback commits a move for player. It returns false if the cell is not
// empty; the move source may then try another cell.
type MoveCallback func(index int, player *Player) bool

// MoveSource delivers the moves of one player: a bot, a human or any other agent.
// RequestMove must invoke the callback at most once per request, either before
// returning or later.
type MoveSource interface {
	Player() *Player
	RequestMove(board ReadOnlyBoard, callback MoveCallback)
}

// MoveCanceler is implemented by move sources that can hold a request open. The
// game calls CancelMove when a new game makes the pending request stale.
type MoveCanceler interface {
	CancelMove()
}
