package engine

import (
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
)

// Outcome is how a battle was resolved
type Outcome string

// Battle outcomes
const (
	OutcomeKnockout   Outcome = "knockout"
	OutcomeHPTiebreak Outcome = "hp_tiebreak"
	OutcomeDraw       Outcome = "draw"
)

// DrawMarker is reported in place of a winner name when a battle is drawn
const DrawMarker = "draw"

// Event types published while a battle runs
const (
	EventTurn     = "battle.turn"
	EventResolved = "battle.resolved"
)

// RunBattleInput contains the two participants in request order
type RunBattleInput struct {
	Pokemon1 *pokemon.Pokemon
	Pokemon2 *pokemon.Pokemon
}

// RunBattleOutput contains the resolved battle
type RunBattleOutput struct {
	Result *Result
}

// Attack describes a single turn
type Attack struct {
	Turn          int
	Attacker      string
	Defender      string
	Move          string
	Damage        int
	Multiplier    float64
	Effectiveness float64
	DefenderHP    int
	Description   string
}

// FighterSnapshot is a participant's state once the battle is over
type FighterSnapshot struct {
	Pokemon   pokemon.Info
	MaxHP     int
	CurrentHP int
}

// Result is a resolved battle. Fighters keep the pokemon1/pokemon2 request order.
type Result struct {
	Log      []string
	Attacks  []Attack
	Fighters [2]FighterSnapshot
	Outcome  Outcome
	// Winner is empty on a draw
	Winner string
	Turns  int
}

// WinnerLabel returns the winner name or DrawMarker
func (r *Result) WinnerLabel() string {
	if r.Outcome == OutcomeDraw {
		return DrawMarker
	}
	return r.Winner
}
