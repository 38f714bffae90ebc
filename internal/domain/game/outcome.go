package game

// OutcomeKind tells whether a game is still running, won or drawn.
type OutcomeKind int

const (
	NotOver OutcomeKind = iota
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case NotOver:
		return "not_over"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Outcome is the result of a game-over check. Winner is set only for Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner *Player
}

func NotOverOutcome() Outcome {
	return Outcome{Kind: NotOver}
}

func WinOutcome(winner *Player) Outcome {
	return Outcome{Kind: Win, Winner: winner}
}

func DrawOutcome() Outcome {
	return Outcome{Kind: Draw}
}

func (o Outcome) IsOver() bool {
	return o.Kind != NotOver
}

func (o Outcome) String() string {
	if o.Kind == Win {
		return "win:" + nameOf(o.Winner)
	}
	return o.Kind.String()
}

// Phase is the lifecycle state of a game.
type Phase int

const (
	NotStarted Phase = iota
	AwaitingMove
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case AwaitingMove:
		return "awaiting_move"
	case Over:
		return "over"
	}
	return "unknown"
}
