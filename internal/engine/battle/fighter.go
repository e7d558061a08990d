package battle

import (
	"github.com/pokebattle/battle-api/internal/engine"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

// Fighter is one side of a running battle. Hit points live here so the
// shared pokemon record is never mutated.
type Fighter struct {
	Pokemon   *pokemon.Pokemon
	CurrentHP int
}

// NewFighter enters p into a battle at full health
func NewFighter(p *pokemon.Pokemon) *Fighter {
	return &Fighter{
		Pokemon:   p,
		CurrentHP: p.Stats.HP,
	}
}

// GetID implements core.Entity
func (f *Fighter) GetID() string {
	return f.Pokemon.Name
}

// GetType implements core.Entity
func (f *Fighter) GetType() string {
	return pokemon.EntityType
}

// Name returns the fighter's display name
func (f *Fighter) Name() string {
	return f.Pokemon.Name
}

// KnockedOut reports whether the fighter has no hit points left
func (f *Fighter) KnockedOut() bool {
	return f.CurrentHP <= 0
}

func (f *Fighter) snapshot() engine.FighterSnapshot {
	return engine.FighterSnapshot{
		Pokemon:   f.Pokemon.Info(),
		MaxHP:     f.Pokemon.Stats.HP,
		CurrentHP: f.CurrentHP,
	}
}
