package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebattle/battle-api/internal/engine/battle"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

func TestBaseDamage(t *testing.T) {
	// (2/5 + 2) * 70 * (50/70) / 50 + 2
	assert.InDelta(t, 4.4, battle.BaseDamage(70, 50, 70), 1e-9)
	assert.InDelta(t, 2.0, battle.BaseDamage(0, 50, 70), 1e-9)
	// zero defense is treated as one
	assert.InDelta(t, battle.BaseDamage(40, 50, 1), battle.BaseDamage(40, 50, 0), 1e-9)
}

func TestEffectiveness(t *testing.T) {
	relations := pokemon.TypeRelations{
		DoubleDamageTo: []string{"grass", "ice"},
		HalfDamageTo:   []string{"water", "fire"},
		NoDamageTo:     []string{"ghost"},
	}

	testCases := []struct {
		name     string
		types    []string
		expected float64
	}{
		{name: "neutral", types: []string{"normal"}, expected: 1.0},
		{name: "double", types: []string{"grass"}, expected: 2.0},
		{name: "double and half", types: []string{"grass", "water"}, expected: 1.0},
		{name: "half and double", types: []string{"water", "grass"}, expected: 1.0},
		{name: "double double", types: []string{"grass", "ice"}, expected: 4.0},
		{name: "none and double", types: []string{"ghost", "grass"}, expected: 0.0},
		{name: "double and none", types: []string{"grass", "ghost"}, expected: 0.0},
		{name: "half half", types: []string{"water", "fire"}, expected: 0.25},
		{name: "no types", types: nil, expected: 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, battle.Effectiveness(relations, tc.types), 1e-9)
		})
	}
}

func TestEffectivenessChecksDoubleFirst(t *testing.T) {
	relations := pokemon.TypeRelations{
		DoubleDamageTo: []string{"dragon"},
		NoDamageTo:     []string{"dragon"},
	}
	assert.InDelta(t, 2.0, battle.Effectiveness(relations, []string{"dragon"}), 1e-9)
}

func TestRollVarianceCoversBothEnds(t *testing.T) {
	low, err := battle.RollVariance(&scriptedRoller{rolls: []int{1}})
	require.NoError(t, err)
	assert.InDelta(t, battle.MinVariance, low, 1e-12)

	high, err := battle.RollVariance(&scriptedRoller{rolls: []int{10001}})
	require.NoError(t, err)
	assert.InDelta(t, battle.MaxVariance, high, 1e-12)

	mid, err := battle.RollVariance(&scriptedRoller{rolls: []int{5001}})
	require.NoError(t, err)
	assert.InDelta(t, 0.925, mid, 1e-12)
}

func TestComputeDamageExample(t *testing.T) {
	attacker := battle.NewFighter(&pokemon.Pokemon{
		Name:  "raticate",
		Types: []string{"normal"},
		Stats: pokemon.Stats{HP: 55, Attack: 50, Defense: 60, Speed: 97},
		Moves: []pokemon.Move{normalMove},
	})

	for _, roll := range []int{1, 2500, 5001, 7500, 10001} {
		defender := battle.NewFighter(&pokemon.Pokemon{
			Name:  "poliwag",
			Types: []string{"water"},
			Stats: pokemon.Stats{HP: 40, Attack: 50, Defense: 70, Speed: 90},
			Moves: []pokemon.Move{normalMove},
		})

		attack, err := battle.ComputeDamage(&scriptedRoller{rolls: []int{1, roll}}, attacker, defender)
		require.NoError(t, err)

		// 4.4 scaled into [3.74, 4.4] always rounds to 4
		assert.Equal(t, 4, attack.Damage)
		assert.Equal(t, 36, defender.CurrentHP)
		assert.Equal(t, 36, attack.DefenderHP)
		assert.InDelta(t, 1.0, attack.Effectiveness, 1e-9)
		assert.Equal(t, "headbutt", attack.Move)
		assert.Equal(t,
			"raticate attacks poliwag with headbutt. It does 4 damage and poliwag has 36 hitpoints remaining",
			attack.Description)
	}
}

func TestComputeDamagePicksMoveFromRoll(t *testing.T) {
	attacker := battle.NewFighter(&pokemon.Pokemon{
		Name:  "haunter",
		Types: []string{"ghost"},
		Stats: pokemon.Stats{HP: 45, Attack: 50, Defense: 45, Speed: 95},
		Moves: []pokemon.Move{normalMove, ghostMove},
	})
	defender := battle.NewFighter(&pokemon.Pokemon{
		Name:  "alakazam",
		Types: []string{"psychic"},
		Stats: pokemon.Stats{HP: 55, Attack: 50, Defense: 45, Speed: 120},
		Moves: []pokemon.Move{normalMove},
	})

	roller := &scriptedRoller{rolls: []int{2, 10001}}
	attack, err := battle.ComputeDamage(roller, attacker, defender)
	require.NoError(t, err)

	assert.Equal(t, "lick", attack.Move)
	assert.InDelta(t, 2.0, attack.Effectiveness, 1e-9)
	assert.Equal(t, []int{2, 10001}, roller.sizes)
}

func TestComputeDamageNoEffectKeepsDefenderAlive(t *testing.T) {
	attacker := battle.NewFighter(&pokemon.Pokemon{
		Name:  "tauros",
		Types: []string{"normal"},
		Stats: pokemon.Stats{HP: 75, Attack: 1000, Defense: 95, Speed: 110},
		Moves: []pokemon.Move{normalMove},
	})
	defender := battle.NewFighter(&pokemon.Pokemon{
		Name:  "gastly",
		Types: []string{"ghost", "poison"},
		Stats: pokemon.Stats{HP: 1, Attack: 35, Defense: 1, Speed: 80},
		Moves: []pokemon.Move{ghostMove},
	})

	attack, err := battle.ComputeDamage(&scriptedRoller{rolls: []int{1, 10001}}, attacker, defender)
	require.NoError(t, err)

	assert.Zero(t, attack.Damage)
	assert.Equal(t, 1, defender.CurrentHP)
	assert.False(t, defender.KnockedOut())
}

func TestComputeDamageRequiresMoves(t *testing.T) {
	attacker := battle.NewFighter(&pokemon.Pokemon{Name: "empty"})
	defender := battle.NewFighter(&pokemon.Pokemon{Name: "target", Stats: pokemon.Stats{HP: 10}})

	_, err := battle.ComputeDamage(&scriptedRoller{}, attacker, defender)
	assert.Error(t, err)
}

func TestSelectAttackerDefender(t *testing.T) {
	fast := battle.NewFighter(&pokemon.Pokemon{Name: "electrode", Stats: pokemon.Stats{Speed: 150}})
	slow := battle.NewFighter(&pokemon.Pokemon{Name: "slowbro", Stats: pokemon.Stats{Speed: 30}})

	attacker, defender, err := battle.SelectAttackerDefender(&scriptedRoller{}, fast, slow)
	require.NoError(t, err)
	assert.Same(t, fast, attacker)
	assert.Same(t, slow, defender)

	attacker, defender, err = battle.SelectAttackerDefender(&scriptedRoller{}, slow, fast)
	require.NoError(t, err)
	assert.Same(t, fast, attacker)
	assert.Same(t, slow, defender)
}

func TestSelectAttackerDefenderTie(t *testing.T) {
	a := battle.NewFighter(&pokemon.Pokemon{Name: "nidoran-f", Stats: pokemon.Stats{Speed: 41}})
	b := battle.NewFighter(&pokemon.Pokemon{Name: "nidoran-m", Stats: pokemon.Stats{Speed: 41}})

	roller := &scriptedRoller{rolls: []int{1}}
	attacker, _, err := battle.SelectAttackerDefender(roller, a, b)
	require.NoError(t, err)
	assert.Same(t, a, attacker)
	assert.Equal(t, []int{2}, roller.sizes)

	attacker, defender, err := battle.SelectAttackerDefender(&scriptedRoller{rolls: []int{2}}, a, b)
	require.NoError(t, err)
	assert.Same(t, b, attacker)
	assert.Same(t, a, defender)
}

func TestSeededRoller(t *testing.T) {
	a := battle.NewSeededRoller(7)
	b := battle.NewSeededRoller(7)

	for range 100 {
		x, err := a.Roll(6)
		require.NoError(t, err)
		y, err := b.Roll(6)
		require.NoError(t, err)

		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, 1)
		assert.LessOrEqual(t, x, 6)
	}

	rolls, err := a.RollN(4, 20)
	require.NoError(t, err)
	assert.Len(t, rolls, 4)

	_, err = a.Roll(0)
	assert.Error(t, err)
	_, err = a.RollN(-1, 6)
	assert.Error(t, err)
}
