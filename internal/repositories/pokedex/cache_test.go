package pokedex_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/repositories/pokedex"
	pokedexmock "github.com/pokebattle/battle-api/internal/repositories/pokedex/mock"
)

type CacheTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLoader *pokedexmock.MockLoader
	cache      *pokedex.Cache
	ctx        context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoader = pokedexmock.NewMockLoader(s.ctrl)
	s.ctx = context.Background()

	cache, err := pokedex.New(&pokedex.Config{Loader: s.mockLoader})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *CacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testPokemon(name string) *pokemon.Pokemon {
	return &pokemon.Pokemon{
		Name:  name,
		Types: []string{"normal"},
		Stats: pokemon.Stats{HP: 50, Attack: 50, Defense: 50, Speed: 50},
		Moves: []pokemon.Move{pokemon.Struggle},
	}
}

func (s *CacheTestSuite) TestNewRequiresLoader() {
	_, err := pokedex.New(&pokedex.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = pokedex.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CacheTestSuite) TestResolveReturnsSameInstance() {
	pikachu := testPokemon("pikachu")
	s.mockLoader.EXPECT().Load(gomock.Any(), "pikachu").Return(pikachu, nil).Times(1)

	first, err := s.cache.Resolve(s.ctx, "pikachu")
	s.Require().NoError(err)

	second, err := s.cache.Resolve(s.ctx, "  PIKACHU ")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Same(pikachu, first)
	s.Equal(1, s.cache.Len())
}

func (s *CacheTestSuite) TestResolveDoesNotStoreFailures() {
	gomock.InOrder(
		s.mockLoader.EXPECT().Load(gomock.Any(), "eevee").Return(nil, errors.Unavailable("PokeAPI unreachable")),
		s.mockLoader.EXPECT().Load(gomock.Any(), "eevee").Return(testPokemon("eevee"), nil),
	)

	_, err := s.cache.Resolve(s.ctx, "eevee")
	s.True(errors.IsUnavailable(err))
	s.Equal(0, s.cache.Len())

	p, err := s.cache.Resolve(s.ctx, "eevee")
	s.Require().NoError(err)
	s.Equal("eevee", p.Name)
	s.Equal(1, s.cache.Len())
}

func (s *CacheTestSuite) TestResolveRejectsBlankName() {
	_, err := s.cache.Resolve(s.ctx, "   ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CacheTestSuite) TestPurgeForcesReload() {
	s.mockLoader.EXPECT().Load(gomock.Any(), "onix").
		DoAndReturn(func(_ context.Context, name string) (*pokemon.Pokemon, error) {
			return testPokemon(name), nil
		}).Times(2)

	first, err := s.cache.Resolve(s.ctx, "onix")
	s.Require().NoError(err)

	s.cache.Purge()
	s.Equal(0, s.cache.Len())

	second, err := s.cache.Resolve(s.ctx, "onix")
	s.Require().NoError(err)
	s.NotSame(first, second)
}

func (s *CacheTestSuite) TestConcurrentMissesLoadOnce() {
	release := make(chan struct{})
	s.mockLoader.EXPECT().Load(gomock.Any(), "snorlax").
		DoAndReturn(func(_ context.Context, name string) (*pokemon.Pokemon, error) {
			<-release
			return testPokemon(name), nil
		}).Times(1)

	const callers = 8
	results := make([]*pokemon.Pokemon, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.cache.Resolve(s.ctx, "snorlax")
			s.NoError(err)
			results[i] = p
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, p := range results {
		s.Same(results[0], p)
	}
}

func (s *CacheTestSuite) TestCancelledCallerDoesNotFailSharedLoad() {
	release := make(chan struct{})
	started := make(chan struct{})
	s.mockLoader.EXPECT().Load(gomock.Any(), "eevee").
		DoAndReturn(func(ctx context.Context, name string) (*pokemon.Pokemon, error) {
			close(started)
			select {
			case <-release:
				return testPokemon(name), nil
			case <-ctx.Done():
				return nil, errors.Unavailable("request failed: " + ctx.Err().Error())
			}
		}).Times(1)

	cancelCtx, cancel := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := s.cache.Resolve(cancelCtx, "eevee")
		errA <- err
	}()
	<-started

	type result struct {
		p   *pokemon.Pokemon
		err error
	}
	resB := make(chan result, 1)
	go func() {
		p, err := s.cache.Resolve(context.Background(), "eevee")
		resB <- result{p: p, err: err}
	}()

	cancel()
	err := <-errA
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))

	time.Sleep(20 * time.Millisecond)
	close(release)

	b := <-resB
	s.Require().NoError(b.err)
	s.Equal("eevee", b.p.Name)
	s.Equal(1, s.cache.Len())
}

func (s *CacheTestSuite) TestLRUStoreEvictsOldest() {
	store, err := pokedex.NewLRUStore(2)
	s.Require().NoError(err)

	cache, err := pokedex.New(&pokedex.Config{Loader: s.mockLoader, Store: store})
	s.Require().NoError(err)

	s.mockLoader.EXPECT().Load(gomock.Any(), "bulbasaur").Return(testPokemon("bulbasaur"), nil).Times(2)
	s.mockLoader.EXPECT().Load(gomock.Any(), "charmander").Return(testPokemon("charmander"), nil).Times(1)
	s.mockLoader.EXPECT().Load(gomock.Any(), "squirtle").Return(testPokemon("squirtle"), nil).Times(1)

	for _, name := range []string{"bulbasaur", "charmander", "charmander", "squirtle", "bulbasaur"} {
		_, err := cache.Resolve(s.ctx, name)
		s.Require().NoError(err)
	}
	s.Equal(2, cache.Len())
}

func (s *CacheTestSuite) TestUnboundedStore() {
	store := pokedex.NewUnboundedStore()
	store.Add("mew", testPokemon("mew"))
	store.Add("mewtwo", testPokemon("mewtwo"))

	p, ok := store.Get("mew")
	s.True(ok)
	s.Equal("mew", p.Name)
	s.Equal(2, store.Len())

	store.Purge()
	_, ok = store.Get("mew")
	s.False(ok)
}

func (s *CacheTestSuite) TestNewLRUStoreRejectsBadSize() {
	_, err := pokedex.NewLRUStore(0)
	s.True(errors.IsInvalidArgument(err))
}
