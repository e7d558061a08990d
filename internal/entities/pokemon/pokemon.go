// Package pokemon holds the battle-ready representation of a species
package pokemon

import (
	"slices"
	"strings"
)

// Damage classes a move can belong to
const (
	DamageClassPhysical = "physical"
	DamageClassSpecial  = "special"
)

// EntityType is reported to rpg-toolkit as the entity type
const EntityType = "pokemon"

// Struggle is substituted when a species has no move with power.
// Its relations are left empty; the loader fills them from the provider.
var Struggle = Move{
	Name:        "struggle",
	Power:       50,
	DamageClass: DamageClassPhysical,
	Type:        "normal",
}

// Stats is the flat stat block of a species
type Stats struct {
	HP             int     `json:"hp"`
	Attack         int     `json:"attack"`
	Defense        int     `json:"defense"`
	SpecialAttack  int     `json:"special-attack"`
	SpecialDefense int     `json:"special-defense"`
	Speed          int     `json:"speed"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
}

// TypeRelations lists which defending types a move type is strong or weak against
type TypeRelations struct {
	DoubleDamageTo []string `json:"double_damage_to"`
	HalfDamageTo   []string `json:"half_damage_to"`
	NoDamageTo     []string `json:"no_damage_to"`
}

// Multiplier returns the factor a single defending type contributes.
// Double damage is checked first, then half, then none.
func (r TypeRelations) Multiplier(defendingType string) float64 {
	switch {
	case slices.Contains(r.DoubleDamageTo, defendingType):
		return 2.0
	case slices.Contains(r.HalfDamageTo, defendingType):
		return 0.5
	case slices.Contains(r.NoDamageTo, defendingType):
		return 0.0
	default:
		return 1.0
	}
}

// Move is a damaging move a pokemon can use in battle
type Move struct {
	Name        string        `json:"name"`
	Power       int           `json:"power"`
	DamageClass string        `json:"damage_class"`
	Type        string        `json:"type"`
	Relations   TypeRelations `json:"relations"`
}

// Pokemon is a species resolved from the data provider.
// Records are shared through the pokedex cache and must not be mutated;
// per-battle hit points live on battle.Fighter.
type Pokemon struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
	Stats Stats    `json:"stats"`
	Moves []Move   `json:"moves"`
}

// GetID implements core.Entity
func (p *Pokemon) GetID() string {
	return p.Name
}

// GetType implements core.Entity
func (p *Pokemon) GetType() string {
	return EntityType
}

// Clone returns a deep copy that shares no slices with p
func (p *Pokemon) Clone() *Pokemon {
	if p == nil {
		return nil
	}

	clone := &Pokemon{
		Name:  p.Name,
		Types: slices.Clone(p.Types),
		Stats: p.Stats,
		Moves: make([]Move, len(p.Moves)),
	}
	for i, m := range p.Moves {
		m.Relations = TypeRelations{
			DoubleDamageTo: slices.Clone(m.Relations.DoubleDamageTo),
			HalfDamageTo:   slices.Clone(m.Relations.HalfDamageTo),
			NoDamageTo:     slices.Clone(m.Relations.NoDamageTo),
		}
		clone.Moves[i] = m
	}
	return clone
}

// Info is the public summary of a pokemon returned with battle results
type Info struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
	Stats Stats    `json:"stats"`
}

// Info returns the public summary of p
func (p *Pokemon) Info() Info {
	return Info{
		Name:  p.Name,
		Types: slices.Clone(p.Types),
		Stats: p.Stats,
	}
}

// NormalizeName converts a requested species name to its lookup key
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
