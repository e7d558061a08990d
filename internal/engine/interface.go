// Package engine defines the battle rules contract
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/pokebattle/battle-api/internal/engine Engine

import (
	"context"
)

// Engine simulates battles between resolved pokemon
type Engine interface {
	// RunBattle plays up to MaxTurns alternating attacks and resolves the winner
	RunBattle(ctx context.Context, input *RunBattleInput) (*RunBattleOutput, error)
}
