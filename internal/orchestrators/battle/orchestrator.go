// Package battle implements the battle orchestrator that resolves pokemon,
// runs the engine and records the result
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/pokebattle/battle-api/internal/orchestrators/battle Service,Resolver

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pokebattle/battle-api/internal/engine"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/pkg/clock"
	"github.com/pokebattle/battle-api/internal/pkg/idgen"
	"github.com/pokebattle/battle-api/internal/repositories/battles"
)

// MaxListLimit bounds a single history request
const MaxListLimit = 500

// Service defines the interface for battle operations
type Service interface {
	// Battle resolves both pokemon and plays a battle between them
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)

	// ListBattles returns previously recorded battles newest first
	ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error)
}

// Resolver turns a species name into a battle-ready pokemon
type Resolver interface {
	Resolve(ctx context.Context, name string) (*pokemon.Pokemon, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Resolver    Resolver
	Engine      engine.Engine
	Repository  battles.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	resolver Resolver
	engine   engine.Engine
	repo     battles.Repository
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		resolver: cfg.Resolver,
		engine:   cfg.Engine,
		repo:     cfg.Repository,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
	}, nil
}

// Battle resolves both pokemon and plays a battle between them.
// A failure to record the battle is logged and does not change the result.
func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("pokemon1", input.Pokemon1, vb)
	errors.ValidateRequired("pokemon2", input.Pokemon2, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slog.Info("Battle requested",
		"pokemon1", input.Pokemon1,
		"pokemon2", input.Pokemon2,
	)

	var p1, p2 *pokemon.Pokemon
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p1, err = o.resolver.Resolve(gctx, input.Pokemon1)
		return err
	})
	g.Go(func() error {
		var err error
		p2, err = o.resolver.Resolve(gctx, input.Pokemon2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p1, p2 = engine.Participants(p1, p2)

	runOutput, err := o.engine.RunBattle(ctx, &engine.RunBattleInput{
		Pokemon1: p1,
		Pokemon2: p2,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to run battle")
	}
	result := runOutput.Result

	record := &battles.Record{
		ID:        o.idGen.Generate(),
		Pokemon1:  p1.Name,
		Pokemon2:  p2.Name,
		Winner:    result.WinnerLabel(),
		Outcome:   string(result.Outcome),
		BattleLog: result.Log,
		CreatedAt: o.clock.Now(),
	}

	if _, err := o.repo.Record(context.WithoutCancel(ctx), &battles.RecordInput{Record: record}); err != nil {
		slog.Error("Failed to record battle",
			"battle_id", record.ID,
			"winner", record.Winner,
			"error", err,
		)
	}

	return &BattleOutput{
		BattleID:  record.ID,
		Pokemon1:  result.Fighters[0].Pokemon,
		Pokemon2:  result.Fighters[1].Pokemon,
		Winner:    result.WinnerLabel(),
		Outcome:   string(result.Outcome),
		BattleLog: result.Log,
	}, nil
}

// ListBattles returns previously recorded battles newest first
func (o *orchestrator) ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error) {
	if input == nil {
		input = &ListBattlesInput{}
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("limit", input.Limit, 0, MaxListLimit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output, err := o.repo.List(ctx, &battles.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}

	return &ListBattlesOutput{Battles: output.Records}, nil
}
