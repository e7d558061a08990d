// Package pokedex memoizes resolved pokemon so repeated battles skip the data provider
package pokedex

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_loader.go -package=pokedexmock github.com/pokebattle/battle-api/internal/repositories/pokedex Loader

// Loader builds a pokemon from the data provider
type Loader interface {
	Load(ctx context.Context, name string) (*pokemon.Pokemon, error)
}

// Config configures a Cache
type Config struct {
	Loader Loader
	// Store defaults to an LRU store of DefaultMaxSpecies entries
	Store Store
}

// Validate checks the configuration and fills defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Loader == nil {
		vb.RequiredField("Loader")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Store == nil {
		store, err := NewLRUStore(DefaultMaxSpecies)
		if err != nil {
			return err
		}
		c.Store = store
	}

	return nil
}

// Cache resolves species names to shared pokemon records.
// Concurrent misses for one name trigger a single load, and failed loads are not stored.
type Cache struct {
	loader Loader
	store  Store
	group  singleflight.Group
}

// New creates a cache from cfg
func New(cfg *Config) (*Cache, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Cache{
		loader: cfg.Loader,
		store:  cfg.Store,
	}, nil
}

// Resolve returns the stored pokemon for name, loading it on a miss.
// Every hit returns the same instance; callers must not mutate it.
func (c *Cache) Resolve(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	key := pokemon.NormalizeName(name)
	if key == "" {
		return nil, errors.InvalidArgument("pokemon name is required")
	}

	if p, ok := c.store.Get(key); ok {
		return p, nil
	}

	// Loads run detached from the caller; each caller waits on its own context.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if p, ok := c.store.Get(key); ok {
			return p, nil
		}

		p, err := c.loader.Load(loadCtx, key)
		if err != nil {
			return nil, err
		}

		c.store.Add(key, p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		err := ctx.Err()
		return nil, errors.WrapWithCodef(err, errors.GetCode(err), "lookup of %s abandoned", key)
	case res := <-ch:
		if res.Err != nil {
			slog.Warn("Failed to resolve pokemon", "pokemon", key, "error", res.Err)
			return nil, res.Err
		}

		slog.Debug("Resolved pokemon", "pokemon", key, "shared", res.Shared)
		return res.Val.(*pokemon.Pokemon), nil
	}
}

// Len returns the number of cached species
func (c *Cache) Len() int {
	return c.store.Len()
}

// Purge drops every cached species
func (c *Cache) Purge() {
	c.store.Purge()
}
