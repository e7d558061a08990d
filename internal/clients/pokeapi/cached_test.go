package pokeapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokebattle/battle-api/internal/clients/pokeapi"
	pokeapimock "github.com/pokebattle/battle-api/internal/clients/pokeapi/mock"
	"github.com/pokebattle/battle-api/internal/errors"
)

func TestCachedClientReusesMovesAndTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := pokeapimock.NewMockClient(ctrl)
	ctx := context.Background()

	client := pokeapi.NewCachedClient(mockClient, time.Hour, 16)

	move := &pokeapi.MoveData{Name: "tackle", Power: power(40)}
	mockClient.EXPECT().GetMove(ctx, "tackle").Return(move, nil).Times(1)
	mockClient.EXPECT().GetType(ctx, "normal").Return(&pokeapi.TypeData{Name: "normal"}, nil).Times(1)

	for range 3 {
		got, err := client.GetMove(ctx, "tackle")
		require.NoError(t, err)
		assert.Same(t, move, got)

		typ, err := client.GetType(ctx, "normal")
		require.NoError(t, err)
		assert.Equal(t, "normal", typ.Name)
	}
}

func TestCachedClientDoesNotCacheFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := pokeapimock.NewMockClient(ctrl)
	ctx := context.Background()

	client := pokeapi.NewCachedClient(mockClient, 0, 0)

	gomock.InOrder(
		mockClient.EXPECT().GetMove(ctx, "tackle").Return(nil, errors.Unavailable("down")),
		mockClient.EXPECT().GetMove(ctx, "tackle").Return(&pokeapi.MoveData{Name: "tackle"}, nil),
	)

	_, err := client.GetMove(ctx, "tackle")
	require.Error(t, err)

	got, err := client.GetMove(ctx, "tackle")
	require.NoError(t, err)
	assert.Equal(t, "tackle", got.Name)
}

func TestCachedClientPassesSpeciesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := pokeapimock.NewMockClient(ctrl)
	ctx := context.Background()

	client := pokeapi.NewCachedClient(mockClient, time.Hour, 16)

	mockClient.EXPECT().GetPokemon(ctx, "pikachu").Return(&pokeapi.PokemonData{Name: "pikachu"}, nil).Times(2)

	for range 2 {
		_, err := client.GetPokemon(ctx, "pikachu")
		require.NoError(t, err)
	}
}
