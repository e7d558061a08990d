package battle

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pokebattle/battle-api/internal/errors"
)

// SelectAttackerDefender orders two fighters for the first turn.
// The faster fighter attacks first; a speed tie is settled with a d2.
func SelectAttackerDefender(roller dice.Roller, a, b *Fighter) (*Fighter, *Fighter, error) {
	switch {
	case a.Pokemon.Stats.Speed > b.Pokemon.Stats.Speed:
		return a, b, nil
	case a.Pokemon.Stats.Speed < b.Pokemon.Stats.Speed:
		return b, a, nil
	}

	roll, err := roller.Roll(2)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to break speed tie")
	}
	if roll == 1 {
		return a, b, nil
	}
	return b, a, nil
}
