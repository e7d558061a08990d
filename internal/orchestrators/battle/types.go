package battle

import (
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/repositories/battles"
)

// BattleInput defines the request for a battle
type BattleInput struct {
	Pokemon1 string
	Pokemon2 string
}

// BattleOutput defines the response for a battle
type BattleOutput struct {
	BattleID string
	Pokemon1 pokemon.Info
	Pokemon2 pokemon.Info
	// Winner is the winning pokemon name or "draw"
	Winner    string
	Outcome   string
	BattleLog []string
}

// ListBattlesInput defines the request for listing previous battles
type ListBattlesInput struct {
	// Limit caps the number of battles returned; zero uses the repository default
	Limit int
}

// ListBattlesOutput defines the response for listing previous battles
type ListBattlesOutput struct {
	Battles []*battles.Record
}
