package engine

import (
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

// MaxTurns is the number of attacks played before the hp tiebreak
const MaxTurns = 6

// Participants prepares the two sides of a battle. When both sides are the same
// species the second is deep copied and renamed so the two never alias.
func Participants(p1, p2 *pokemon.Pokemon) (*pokemon.Pokemon, *pokemon.Pokemon) {
	if p1 == nil || p2 == nil {
		return p1, p2
	}

	if p1 == p2 || p1.Name == p2.Name {
		second := p2.Clone()
		second.Name = p2.Name + "2"
		return p1, second
	}

	return p1, p2
}
