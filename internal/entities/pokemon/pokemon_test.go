package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

func newElectrode() *pokemon.Pokemon {
	return &pokemon.Pokemon{
		Name:  "electrode",
		Types: []string{"electric"},
		Stats: pokemon.Stats{HP: 60, Attack: 50, Defense: 70, SpecialAttack: 80, SpecialDefense: 80, Speed: 150, Height: 1.2, Weight: 66.6},
		Moves: []pokemon.Move{
			{
				Name:        "thunderbolt",
				Power:       90,
				DamageClass: pokemon.DamageClassSpecial,
				Type:        "electric",
				Relations: pokemon.TypeRelations{
					DoubleDamageTo: []string{"flying", "water"},
					HalfDamageTo:   []string{"grass", "electric", "dragon"},
					NoDamageTo:     []string{"ground"},
				},
			},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := newElectrode()
	clone := original.Clone()

	require.Equal(t, original, clone)
	require.NotSame(t, original, clone)

	clone.Name = "electrode2"
	clone.Types[0] = "steel"
	clone.Stats.HP = 1
	clone.Moves[0].Power = 1
	clone.Moves[0].Relations.DoubleDamageTo[0] = "rock"

	assert.Equal(t, "electrode", original.Name)
	assert.Equal(t, []string{"electric"}, original.Types)
	assert.Equal(t, 60, original.Stats.HP)
	assert.Equal(t, 90, original.Moves[0].Power)
	assert.Equal(t, "flying", original.Moves[0].Relations.DoubleDamageTo[0])
}

func TestCloneNil(t *testing.T) {
	var p *pokemon.Pokemon
	assert.Nil(t, p.Clone())
}

func TestTypeRelationsMultiplier(t *testing.T) {
	relations := newElectrode().Moves[0].Relations

	testCases := []struct {
		defending string
		expected  float64
	}{
		{"water", 2.0},
		{"grass", 0.5},
		{"ground", 0.0},
		{"normal", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.defending, func(t *testing.T) {
			assert.Equal(t, tc.expected, relations.Multiplier(tc.defending))
		})
	}
}

func TestInfoAndEntity(t *testing.T) {
	p := newElectrode()

	info := p.Info()
	assert.Equal(t, "electrode", info.Name)
	assert.Equal(t, []string{"electric"}, info.Types)
	assert.Equal(t, 150, info.Stats.Speed)

	assert.Equal(t, "electrode", p.GetID())
	assert.Equal(t, pokemon.EntityType, p.GetType())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "mr-mime", pokemon.NormalizeName("  Mr-Mime "))
	assert.Equal(t, "", pokemon.NormalizeName("   "))
}
