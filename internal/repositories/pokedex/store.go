package pokedex

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

// DefaultMaxSpecies is the number of distinct species kept by the LRU store
const DefaultMaxSpecies = 100

// Store holds resolved pokemon keyed by normalized name.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(name string) (*pokemon.Pokemon, bool)
	Add(name string, p *pokemon.Pokemon)
	Len() int
	Purge()
}

// LRUStore evicts the least recently resolved species once full
type LRUStore struct {
	cache *lru.Cache[string, *pokemon.Pokemon]
}

// NewLRUStore creates a store holding at most size species
func NewLRUStore(size int) (*LRUStore, error) {
	if size <= 0 {
		return nil, errors.InvalidArgumentf("store size must be positive, got %d", size)
	}

	cache, err := lru.New[string, *pokemon.Pokemon](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lru cache")
	}

	return &LRUStore{cache: cache}, nil
}

// Get returns the stored pokemon and marks it recently used
func (s *LRUStore) Get(name string) (*pokemon.Pokemon, bool) {
	return s.cache.Get(name)
}

// Add stores p, evicting the oldest entry if the store is full
func (s *LRUStore) Add(name string, p *pokemon.Pokemon) {
	s.cache.Add(name, p)
}

// Len returns the number of stored species
func (s *LRUStore) Len() int {
	return s.cache.Len()
}

// Purge removes every entry
func (s *LRUStore) Purge() {
	s.cache.Purge()
}

// UnboundedStore never evicts
type UnboundedStore struct {
	mu    sync.RWMutex
	store map[string]*pokemon.Pokemon
}

// NewUnboundedStore creates a map backed store
func NewUnboundedStore() *UnboundedStore {
	return &UnboundedStore{
		store: make(map[string]*pokemon.Pokemon),
	}
}

// Get returns the stored pokemon
func (s *UnboundedStore) Get(name string) (*pokemon.Pokemon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.store[name]
	return p, ok
}

// Add stores p
func (s *UnboundedStore) Add(name string, p *pokemon.Pokemon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[name] = p
}

// Len returns the number of stored species
func (s *UnboundedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.store)
}

// Purge removes every entry
func (s *UnboundedStore) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = make(map[string]*pokemon.Pokemon)
}
