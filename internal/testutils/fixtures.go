package testutils

import (
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

var normalRelations = pokemon.TypeRelations{
	HalfDamageTo: []string{"rock", "steel"},
	NoDamageTo:   []string{"ghost"},
}

var electricRelations = pokemon.TypeRelations{
	DoubleDamageTo: []string{"flying", "water"},
	HalfDamageTo:   []string{"electric", "grass", "dragon"},
	NoDamageTo:     []string{"ground"},
}

// Electrode returns a fresh electrode record with its first four damaging moves
func Electrode() *pokemon.Pokemon {
	return &pokemon.Pokemon{
		Name:  "electrode",
		Types: []string{"electric"},
		Stats: pokemon.Stats{
			HP: 60, Attack: 50, Defense: 70, SpecialAttack: 80, SpecialDefense: 80, Speed: 150,
			Height: 1.2, Weight: 66.6,
		},
		Moves: []pokemon.Move{
			{Name: "headbutt", Power: 70, DamageClass: pokemon.DamageClassPhysical, Type: "normal", Relations: normalRelations},
			{Name: "tackle", Power: 40, DamageClass: pokemon.DamageClassPhysical, Type: "normal", Relations: normalRelations},
			{Name: "take-down", Power: 90, DamageClass: pokemon.DamageClassPhysical, Type: "normal", Relations: normalRelations},
			{Name: "hyper-beam", Power: 150, DamageClass: pokemon.DamageClassSpecial, Type: "normal", Relations: normalRelations},
		},
	}
}

// Pikachu returns a fresh pikachu record
func Pikachu() *pokemon.Pokemon {
	return &pokemon.Pokemon{
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: pokemon.Stats{
			HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90,
			Height: 0.4, Weight: 6.0,
		},
		Moves: []pokemon.Move{
			{Name: "thunder-shock", Power: 40, DamageClass: pokemon.DamageClassSpecial, Type: "electric", Relations: electricRelations},
			{Name: "quick-attack", Power: 40, DamageClass: pokemon.DamageClassPhysical, Type: "normal", Relations: normalRelations},
		},
	}
}
