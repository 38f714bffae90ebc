package game

import (
	"fmt"

	"github.com/google/uuid"

	errs "quadratum/internal/errors"
)

// Player is an opaque identity. Two players are equal only if they are the same
// pointer; the name is for presentation.
type Player struct {
	id   uuid.UUID
	name string
}

func NewPlayer(name string) *Player {
	if name == "" {
		panic(fmt.Errorf("%w: player name must not be empty", errs.ErrInvalidConfig))
	}
	return &Player{
		id:   uuid.New(),
		name: name,
	}
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) String() string {
	if p == nil {
		return "<none>"
	}
	return p.name
}

// nameOf returns the name of p or an empty string for nil.
func nameOf(p *Player) string {
	if p == nil {
		return ""
	}
	return p.name
}
