package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/pokebattle/battle-api/internal/clients/pokeapi"
	"github.com/pokebattle/battle-api/internal/config"
	"github.com/pokebattle/battle-api/internal/engine"
	battleengine "github.com/pokebattle/battle-api/internal/engine/battle"
	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/orchestrators/battle"
	"github.com/pokebattle/battle-api/internal/pkg/clock"
	"github.com/pokebattle/battle-api/internal/pkg/idgen"
	"github.com/pokebattle/battle-api/internal/redis"
	"github.com/pokebattle/battle-api/internal/repositories/battles"
	"github.com/pokebattle/battle-api/internal/repositories/pokedex"
)

// app holds the wired services shared by the server and battle commands
type app struct {
	battleService battle.Service
	healthCheck   func(ctx context.Context) error
	closers       []func() error
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg config.LogConfig) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid log level")
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{}

	pokeClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.HTTPTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PokeAPI client")
	}

	loader, err := pokeapi.NewLoader(pokeapi.NewCachedClient(pokeClient, cfg.PokeAPI.CacheTTL, cfg.PokeAPI.CacheSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokemon loader")
	}

	var store pokedex.Store
	if cfg.Cache.MaxSpecies == 0 {
		store = pokedex.NewUnboundedStore()
	} else {
		store, err = pokedex.NewLRUStore(cfg.Cache.MaxSpecies)
		if err != nil {
			return nil, err
		}
	}

	cache, err := pokedex.New(&pokedex.Config{
		Loader: loader,
		Store:  store,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokedex cache")
	}

	battleEngine, err := battleengine.New(&battleengine.Config{
		Roller:   newRoller(cfg.Battle.Seed),
		EventBus: newEventBus(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle engine")
	}

	repo, err := a.newRepository(cfg.Storage)
	if err != nil {
		a.close()
		return nil, err
	}

	a.battleService, err = battle.NewOrchestrator(&battle.Config{
		Resolver:    cache,
		Engine:      battleEngine,
		Repository:  repo,
		IDGenerator: idgen.NewUUID("battle"),
		Clock:       clock.New(),
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create battle orchestrator")
	}

	return a, nil
}

func (a *app) newRepository(cfg config.StorageConfig) (battles.Repository, error) {
	switch cfg.Driver {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		a.healthCheck = func(ctx context.Context) error {
			return redis.Ping(ctx, client)
		}
		slog.Info("Using redis battle history", "addr", cfg.RedisAddr)
		return battles.NewRedisRepository(client, cfg.MaxRecords), nil

	case config.StorageSQLite:
		db, err := battles.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access sqlite connection")
		}
		a.closers = append(a.closers, sqlDB.Close)
		a.healthCheck = sqlDB.PingContext
		slog.Info("Using sqlite battle history", "path", cfg.SQLitePath)
		return battles.NewSQLRepository(db), nil

	default:
		slog.Info("Using in-memory battle history", "max_records", cfg.MaxRecords)
		return battles.NewInMemory(cfg.MaxRecords), nil
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

func newRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	slog.Info("Using seeded dice roller", "seed", seed)
	return battleengine.NewSeededRoller(seed)
}

func newEventBus() events.EventBus {
	bus := events.NewBus()
	logEvent := func(_ context.Context, event events.Event) error {
		slog.Debug("Battle event", "type", event.Type())
		return nil
	}
	bus.SubscribeFunc(engine.EventTurn, 0, logEvent)
	bus.SubscribeFunc(engine.EventResolved, 0, logEvent)
	return bus
}
