package pokeapi

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheTTL is how long move and type responses are reused
	DefaultCacheTTL = 24 * time.Hour

	// DefaultCacheSize bounds the number of cached move and type responses each
	DefaultCacheSize = 1024
)

// cachedClient memoizes move and type lookups, which are shared by many species.
// Species lookups are cached as battle records by the pokedex instead.
type cachedClient struct {
	Client
	moves *expirable.LRU[string, *MoveData]
	types *expirable.LRU[string, *TypeData]
}

// NewCachedClient wraps client with TTL-bounded caches for moves and types.
// Failed lookups are not cached.
func NewCachedClient(client Client, ttl time.Duration, size int) Client {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	return &cachedClient{
		Client: client,
		moves:  expirable.NewLRU[string, *MoveData](size, nil, ttl),
		types:  expirable.NewLRU[string, *TypeData](size, nil, ttl),
	}
}

func (c *cachedClient) GetMove(ctx context.Context, ref string) (*MoveData, error) {
	if move, ok := c.moves.Get(ref); ok {
		return move, nil
	}

	move, err := c.Client.GetMove(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.moves.Add(ref, move)
	return move, nil
}

func (c *cachedClient) GetType(ctx context.Context, ref string) (*TypeData, error) {
	if t, ok := c.types.Get(ref); ok {
		return t, nil
	}

	t, err := c.Client.GetType(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.types.Add(ref, t)
	return t, nil
}
