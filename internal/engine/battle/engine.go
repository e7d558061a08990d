// Package battle implements engine.Engine with rpg-toolkit dice and events
package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/pokebattle/battle-api/internal/engine"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

// Config contains configuration for creating a new Engine
type Config struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// EventBus is optional; when set, turn and resolution events are published to it
	EventBus events.EventBus
}

// Validate fills defaults
func (c *Config) Validate() error {
	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	return nil
}

// Engine runs battles. It holds no per-battle state and may be shared.
type Engine struct {
	roller   dice.Roller
	eventBus events.EventBus
}

var _ engine.Engine = (*Engine)(nil)

// New creates a battle engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		roller:   cfg.Roller,
		eventBus: cfg.EventBus,
	}, nil
}

// RunBattle implements engine.Engine
func (e *Engine) RunBattle(ctx context.Context, input *engine.RunBattleInput) (*engine.RunBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := e.Run(ctx, input.Pokemon1, input.Pokemon2)
	if err != nil {
		return nil, err
	}

	return &engine.RunBattleOutput{Result: result}, nil
}

// Run plays a battle between p1 and p2. The records are only read; hit points
// are tracked on fresh fighters.
func (e *Engine) Run(ctx context.Context, p1, p2 *pokemon.Pokemon) (*engine.Result, error) {
	if p1 == nil || p2 == nil {
		return nil, errors.InvalidArgument("two pokemon are required")
	}
	if p1 == p2 {
		return nil, errors.InvalidArgument("pokemon must not share a record")
	}

	first := NewFighter(p1)
	second := NewFighter(p2)

	attacker, defender, err := SelectAttackerDefender(e.roller, first, second)
	if err != nil {
		return nil, err
	}

	result := &engine.Result{
		Log:     make([]string, 0, engine.MaxTurns),
		Attacks: make([]engine.Attack, 0, engine.MaxTurns),
	}

	for turn := 1; turn <= engine.MaxTurns; turn++ {
		attack, err := ComputeDamage(e.roller, attacker, defender)
		if err != nil {
			return nil, errors.Wrapf(err, "turn %d failed", turn)
		}
		attack.Turn = turn

		result.Turns = turn
		result.Log = append(result.Log, attack.Description)
		result.Attacks = append(result.Attacks, *attack)
		e.publish(ctx, engine.EventTurn, attacker, defender, map[string]interface{}{
			"turn":   turn,
			"move":   attack.Move,
			"damage": attack.Damage,
			"hp":     attack.DefenderHP,
		})

		if defender.KnockedOut() {
			result.Outcome = engine.OutcomeKnockout
			result.Winner = attacker.Name()
			break
		}

		attacker, defender = defender, attacker
	}

	if result.Outcome == "" {
		switch {
		case first.CurrentHP > second.CurrentHP:
			result.Outcome = engine.OutcomeHPTiebreak
			result.Winner = first.Name()
		case second.CurrentHP > first.CurrentHP:
			result.Outcome = engine.OutcomeHPTiebreak
			result.Winner = second.Name()
		default:
			result.Outcome = engine.OutcomeDraw
		}
	}

	result.Fighters = [2]engine.FighterSnapshot{first.snapshot(), second.snapshot()}

	slog.Info("Battle resolved",
		"pokemon1", first.Name(),
		"pokemon2", second.Name(),
		"outcome", result.Outcome,
		"winner", result.WinnerLabel(),
		"turns", result.Turns,
	)
	e.publish(ctx, engine.EventResolved, first, second, map[string]interface{}{
		"outcome": string(result.Outcome),
		"winner":  result.WinnerLabel(),
		"turns":   result.Turns,
	})

	return result, nil
}

// publish sends a battle event when a bus is configured. Handler failures are
// logged and never affect the battle.
func (e *Engine) publish(ctx context.Context, eventType string, source, target *Fighter, data map[string]interface{}) {
	if e.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := e.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish battle event", "event", eventType, "error", err)
	}
}
