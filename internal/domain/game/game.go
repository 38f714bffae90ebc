package game

import (
	"time"

	"quadratum/internal/geometry"
)

// State is a snapshot of a game as served to clients.
type State struct {
	GameID       string                 `json:"game_id"`
	Phase        string                 `json:"phase"`
	Players      [2]string              `json:"players"`
	ActivePlayer string                 `json:"active_player,omitempty"`
	Cells        [geometry.Cells]string `json:"cells"`
	Scores       map[string]int         `json:"scores"`
	SquareCounts map[string]int         `json:"square_counts"`
	Squares      []SquareView           `json:"squares"`
	Winner       string                 `json:"winner,omitempty"`
	Draw         bool                   `json:"draw"`
	LastMove     *Move                  `json:"last_move,omitempty"`
	MinScore     int                    `json:"min_score"`
	MinLead      int                    `json:"min_lead"`
}

type SquareView struct {
	Player string `json:"player"`
	Pieces [4]int `json:"pieces"`
	Score  int    `json:"score"`
}

// NewState builds the board and square part of a snapshot. The caller fills in
// the lifecycle fields.
func NewState(board ReadOnlyBoard, squares []Square) State {
	p1, p2 := board.Player1(), board.Player2()
	state := State{
		Players:      [2]string{nameOf(p1), nameOf(p2)},
		Scores:       map[string]int{nameOf(p1): 0, nameOf(p2): 0},
		SquareCounts: map[string]int{nameOf(p1): 0, nameOf(p2): 0},
		Squares:      viewsOf(squares),
	}
	for i := range state.Cells {
		state.Cells[i] = nameOf(board.Piece(i))
	}
	for _, s := range squares {
		state.Scores[nameOf(s.Player)] += s.Score
		state.SquareCounts[nameOf(s.Player)]++
	}
	return state
}

type EventType string

const (
	EventBoardCleared        EventType = "board_cleared"
	EventGameStarted         EventType = "game_started"
	EventActivePlayerChanged EventType = "active_player_changed"
	EventPiecePlaced         EventType = "piece_placed"
	EventSquaresFound        EventType = "squares_found"
	EventGameOver            EventType = "game_over"
)

// Event is the wire form of a game notification.
type Event struct {
	GameID  string       `json:"game_id"`
	Seq     uint64       `json:"seq"`
	Type    EventType    `json:"type"`
	Player  string       `json:"player,omitempty"`
	Index   *int         `json:"index,omitempty"`
	Squares []SquareView `json:"squares,omitempty"`
	Winner  string       `json:"winner,omitempty"`
	Draw    bool         `json:"draw,omitempty"`
	At      time.Time    `json:"at"`
}

func PiecePlacedEvent(index int, player *Player) Event {
	return Event{Type: EventPiecePlaced, Player: nameOf(player), Index: &index}
}

func BoardClearedEvent() Event {
	return Event{Type: EventBoardCleared}
}

func GameStartedEvent(active *Player) Event {
	return Event{Type: EventGameStarted, Player: nameOf(active)}
}

func ActivePlayerChangedEvent(active *Player) Event {
	return Event{Type: EventActivePlayerChanged, Player: nameOf(active)}
}

func SquaresFoundEvent(player *Player, squares []Square) Event {
	return Event{Type: EventSquaresFound, Player: nameOf(player), Squares: viewsOf(squares)}
}

func GameOverEvent(winner *Player) Event {
	return Event{Type: EventGameOver, Winner: nameOf(winner), Draw: winner == nil}
}
