package pokeapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/pokebattle/battle-api/internal/clients/pokeapi"
	pokeapimock "github.com/pokebattle/battle-api/internal/clients/pokeapi/mock"
	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

type LoaderTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	loader     *pokeapi.Loader
	ctx        context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	loader, err := pokeapi.NewLoader(s.mockClient)
	s.Require().NoError(err)
	s.loader = loader
}

func (s *LoaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func power(p int) *int {
	return &p
}

func moveRef(name string) pokeapi.PokemonMove {
	return pokeapi.PokemonMove{Move: pokeapi.NamedResource{Name: name, URL: "https://pokeapi.co/api/v2/move/" + name + "/"}}
}

func electrodeData(moves ...pokeapi.PokemonMove) *pokeapi.PokemonData {
	return &pokeapi.PokemonData{
		Name:   "electrode",
		Height: 12,
		Weight: 666,
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 60, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 50, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 70, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 80, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 80, Stat: pokeapi.NamedResource{Name: "special-defense"}},
			{BaseStat: 150, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Moves: moves,
	}
}

func (s *LoaderTestSuite) expectMove(name string, p *int, class, moveType string) {
	s.mockClient.EXPECT().
		GetMove(s.ctx, "https://pokeapi.co/api/v2/move/"+name+"/").
		Return(&pokeapi.MoveData{
			Name:        name,
			Power:       p,
			DamageClass: pokeapi.NamedResource{Name: class},
			Type:        pokeapi.NamedResource{Name: moveType, URL: "https://pokeapi.co/api/v2/type/" + moveType + "/"},
		}, nil)
}

func (s *LoaderTestSuite) expectType(name string, relations pokeapi.DamageRelations) {
	s.mockClient.EXPECT().
		GetType(s.ctx, "https://pokeapi.co/api/v2/type/"+name+"/").
		Return(&pokeapi.TypeData{Name: name, DamageRelations: relations}, nil)
}

func (s *LoaderTestSuite) TestNewLoaderRequiresClient() {
	_, err := pokeapi.NewLoader(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestLoadParsesStatsAndTypes() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "Electrode").Return(electrodeData(moveRef("headbutt")), nil)
	s.expectMove("headbutt", power(70), "physical", "normal")
	s.expectType("normal", pokeapi.DamageRelations{
		NoDamageTo: []pokeapi.NamedResource{{Name: "ghost"}},
	})

	p, err := s.loader.Load(s.ctx, "Electrode")
	s.Require().NoError(err)

	s.Equal("electrode", p.Name)
	s.Equal([]string{"electric"}, p.Types)
	s.Equal(pokemon.Stats{
		HP: 60, Attack: 50, Defense: 70, SpecialAttack: 80, SpecialDefense: 80, Speed: 150,
		Height: 1.2, Weight: 66.6,
	}, p.Stats)
	s.Require().Len(p.Moves, 1)
	s.Equal("headbutt", p.Moves[0].Name)
	s.Equal([]string{"ghost"}, p.Moves[0].Relations.NoDamageTo)
}

func (s *LoaderTestSuite) TestLoadKeepsFirstFourMovesWithPower() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "electrode").Return(electrodeData(
		moveRef("headbutt"),
		moveRef("tackle"),
		moveRef("sonic-boom"),
		moveRef("thunder-wave"),
		moveRef("hyper-beam"),
		moveRef("thunderbolt"),
		moveRef("take-down"),
	), nil)

	gomock.InOrder(
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "headbutt", Power: power(70),
			DamageClass: pokeapi.NamedResource{Name: "physical"}, Type: pokeapi.NamedResource{Name: "normal"},
		}, nil),
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "tackle", Power: power(40),
			DamageClass: pokeapi.NamedResource{Name: "physical"}, Type: pokeapi.NamedResource{Name: "normal"},
		}, nil),
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "sonic-boom", Power: power(0),
			DamageClass: pokeapi.NamedResource{Name: "special"}, Type: pokeapi.NamedResource{Name: "normal"},
		}, nil),
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "thunder-wave", Power: nil,
			DamageClass: pokeapi.NamedResource{Name: "status"}, Type: pokeapi.NamedResource{Name: "electric"},
		}, nil),
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "hyper-beam", Power: power(150),
			DamageClass: pokeapi.NamedResource{Name: "special"}, Type: pokeapi.NamedResource{Name: "normal"},
		}, nil),
		s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(&pokeapi.MoveData{
			Name: "thunderbolt", Power: power(90),
			DamageClass: pokeapi.NamedResource{Name: "special"}, Type: pokeapi.NamedResource{Name: "electric"},
		}, nil),
	)
	// Type relations are fetched once per type; the seventh move is never requested.
	s.mockClient.EXPECT().GetType(s.ctx, "normal").Return(&pokeapi.TypeData{Name: "normal"}, nil)
	s.mockClient.EXPECT().GetType(s.ctx, "electric").Return(&pokeapi.TypeData{Name: "electric"}, nil)

	p, err := s.loader.Load(s.ctx, "electrode")
	s.Require().NoError(err)

	names := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		names[i] = m.Name
		s.Positive(m.Power)
	}
	s.Equal([]string{"headbutt", "tackle", "hyper-beam", "thunderbolt"}, names)
	s.Equal(pokemon.DamageClassSpecial, p.Moves[2].DamageClass)
}

func (s *LoaderTestSuite) TestLoadFallsBackToStruggle() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "magikarp").Return(electrodeData(moveRef("splash")), nil)
	s.expectMove("splash", nil, "status", "normal")
	s.mockClient.EXPECT().GetType(s.ctx, "normal").Return(&pokeapi.TypeData{
		Name: "normal",
		DamageRelations: pokeapi.DamageRelations{
			HalfDamageTo: []pokeapi.NamedResource{{Name: "rock"}},
		},
	}, nil)

	p, err := s.loader.Load(s.ctx, "magikarp")
	s.Require().NoError(err)
	s.Require().Len(p.Moves, 1)
	s.Equal("struggle", p.Moves[0].Name)
	s.Equal(50, p.Moves[0].Power)
	s.Equal(pokemon.DamageClassPhysical, p.Moves[0].DamageClass)
	s.Equal([]string{"rock"}, p.Moves[0].Relations.HalfDamageTo)
	s.Empty(pokemon.Struggle.Relations.HalfDamageTo)
}

func (s *LoaderTestSuite) TestLoadAbortsOnMoveFailure() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "electrode").Return(electrodeData(moveRef("headbutt")), nil)
	s.mockClient.EXPECT().GetMove(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("PokeAPI unreachable"))

	p, err := s.loader.Load(s.ctx, "electrode")
	s.Nil(p)
	s.True(errors.IsUnavailable(err))
}

func (s *LoaderTestSuite) TestLoadAbortsOnTypeFailure() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "electrode").Return(electrodeData(moveRef("headbutt")), nil)
	s.expectMove("headbutt", power(70), "physical", "normal")
	s.mockClient.EXPECT().GetType(s.ctx, gomock.Any()).Return(nil, errors.NotFound("type not found"))

	p, err := s.loader.Load(s.ctx, "electrode")
	s.Nil(p)
	s.True(errors.IsNotFound(err))
}

func (s *LoaderTestSuite) TestLoadPropagatesNotFound() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "missingno").Return(nil, errors.NotFound("pokemon missingno not found"))

	_, err := s.loader.Load(s.ctx, "missingno")
	s.True(errors.IsNotFound(err))
}

func (s *LoaderTestSuite) TestLoadRejectsIncompleteStats() {
	data := electrodeData()
	data.Stats = data.Stats[:5]
	s.mockClient.EXPECT().GetPokemon(s.ctx, "electrode").Return(data, nil)

	_, err := s.loader.Load(s.ctx, "electrode")
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "speed")
}
