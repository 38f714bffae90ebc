package game

// Move is a committed move.
type Move struct {
	Index  int    `json:"index"`
	Player string `json:"player"`
}

func NewMove(index int, player *Player) Move {
	return Move{Index: index, Player: nameOf(player)}
}
