package battle

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokebattle/battle-api/internal/engine"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

// Formula constants. Every pokemon fights at level 1 and never lands a critical hit.
const (
	level    = 1
	critical = 1

	MinVariance = 0.85
	MaxVariance = 1.00

	// varianceSteps splits [MinVariance, MaxVariance] into an evenly spaced grid
	// so both ends can be rolled
	varianceSteps = 10000
)

// BaseDamage is the generation 1 formula before variance and effectiveness.
// The attack/defense pair is used for every damage class.
func BaseDamage(power, attack, defense int) float64 {
	if defense <= 0 {
		defense = 1
	}

	base := (2*level*critical)/5.0 + 2
	base *= float64(power) * (float64(attack) / float64(defense)) / 50
	return base + 2
}

// Effectiveness multiplies the factor each defending type contributes
func Effectiveness(relations pokemon.TypeRelations, defenderTypes []string) float64 {
	factor := 1.0
	for _, t := range defenderTypes {
		factor *= relations.Multiplier(t)
	}
	return factor
}

// RollVariance picks a damage multiplier uniformly from [MinVariance, MaxVariance]
func RollVariance(roller dice.Roller) (float64, error) {
	roll, err := roller.Roll(varianceSteps + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage variance")
	}
	return MinVariance + (MaxVariance-MinVariance)*float64(roll-1)/varianceSteps, nil
}

// ComputeDamage plays one attack from attacker against defender and applies
// the damage to the defender's hit points
func ComputeDamage(roller dice.Roller, attacker, defender *Fighter) (*engine.Attack, error) {
	moves := attacker.Pokemon.Moves
	if len(moves) == 0 {
		return nil, errors.Internalf("pokemon %s has no moves", attacker.Name())
	}

	pick, err := roller.Roll(len(moves))
	if err != nil {
		return nil, errors.Wrap(err, "failed to choose move")
	}
	move := moves[pick-1]

	variance, err := RollVariance(roller)
	if err != nil {
		return nil, err
	}

	base := BaseDamage(move.Power, attacker.Pokemon.Stats.Attack, defender.Pokemon.Stats.Defense)
	effectiveness := Effectiveness(move.Relations, defender.Pokemon.Types)
	damage := int(math.RoundToEven(base * variance * effectiveness))

	defender.CurrentHP -= damage

	return &engine.Attack{
		Attacker:      attacker.Name(),
		Defender:      defender.Name(),
		Move:          move.Name,
		Damage:        damage,
		Multiplier:    variance,
		Effectiveness: effectiveness,
		DefenderHP:    defender.CurrentHP,
		Description: fmt.Sprintf("%s attacks %s with %s. It does %d damage and %s has %d hitpoints remaining",
			attacker.Name(), defender.Name(), move.Name, damage, defender.Name(), defender.CurrentHP),
	}, nil
}
