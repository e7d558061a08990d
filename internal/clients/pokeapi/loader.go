package pokeapi

import (
	"context"
	"log/slog"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

// MaxMoves is the number of damaging moves kept per pokemon
const MaxMoves = 4

// Stat names as reported by the provider
const (
	statHP             = "hp"
	statAttack         = "attack"
	statDefense        = "defense"
	statSpecialAttack  = "special-attack"
	statSpecialDefense = "special-defense"
	statSpeed          = "speed"
)

var requiredStats = []string{statHP, statAttack, statDefense, statSpecialAttack, statSpecialDefense, statSpeed}

// Loader builds battle-ready pokemon records from provider data
type Loader struct {
	client Client
}

// NewLoader creates a loader reading from client
func NewLoader(client Client) (*Loader, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	return &Loader{client: client}, nil
}

// Load fetches a species and everything needed to battle with it.
// Any failed fetch aborts the load; a partial record is never returned.
func (l *Loader) Load(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	data, err := l.client.GetPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	p, err := convertPokemon(data)
	if err != nil {
		return nil, err
	}

	relations := make(map[string]pokemon.TypeRelations)
	moves, err := l.loadMoves(ctx, data.Moves, relations)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load moves for %s", p.Name)
	}
	p.Moves = moves

	slog.Info("Loaded pokemon",
		"pokemon", p.Name,
		"types", p.Types,
		"moves", len(p.Moves),
	)

	return p, nil
}

// loadMoves walks the move list in provider order and keeps the first
// MaxMoves moves with power, falling back to struggle
func (l *Loader) loadMoves(ctx context.Context, refs []PokemonMove, relations map[string]pokemon.TypeRelations) ([]pokemon.Move, error) {
	moves := make([]pokemon.Move, 0, MaxMoves)

	for _, ref := range refs {
		moveRef := ref.Move.URL
		if moveRef == "" {
			moveRef = ref.Move.Name
		}

		data, err := l.client.GetMove(ctx, moveRef)
		if err != nil {
			return nil, err
		}
		if data.Power == nil || *data.Power <= 0 {
			continue
		}

		typeRef := data.Type.URL
		if typeRef == "" {
			typeRef = data.Type.Name
		}
		rel, err := l.typeRelations(ctx, data.Type.Name, typeRef, relations)
		if err != nil {
			return nil, err
		}

		name := ref.Move.Name
		if name == "" {
			name = data.Name
		}
		moves = append(moves, pokemon.Move{
			Name:        name,
			Power:       *data.Power,
			DamageClass: data.DamageClass.Name,
			Type:        data.Type.Name,
			Relations:   rel,
		})
		if len(moves) == MaxMoves {
			break
		}
	}

	if len(moves) == 0 {
		struggle := pokemon.Struggle
		rel, err := l.typeRelations(ctx, struggle.Type, struggle.Type, relations)
		if err != nil {
			return nil, err
		}
		struggle.Relations = rel
		moves = append(moves, struggle)
	}

	return moves, nil
}

func (l *Loader) typeRelations(ctx context.Context, typeName, ref string, seen map[string]pokemon.TypeRelations) (pokemon.TypeRelations, error) {
	if rel, ok := seen[typeName]; ok {
		return rel, nil
	}

	data, err := l.client.GetType(ctx, ref)
	if err != nil {
		return pokemon.TypeRelations{}, err
	}

	rel := convertDamageRelations(data.DamageRelations)
	seen[typeName] = rel
	return rel, nil
}

func convertPokemon(data *PokemonData) (*pokemon.Pokemon, error) {
	if data == nil {
		return nil, errors.Internal("pokemon data is nil")
	}
	if len(data.Types) == 0 {
		return nil, errors.Internalf("pokemon %s has no types", data.Name)
	}

	p := &pokemon.Pokemon{
		Name:  data.Name,
		Types: make([]string, 0, len(data.Types)),
		Stats: pokemon.Stats{
			Height: float64(data.Height) / 10.0,
			Weight: float64(data.Weight) / 10.0,
		},
	}

	for _, t := range data.Types {
		p.Types = append(p.Types, t.Type.Name)
	}

	found := make(map[string]bool, len(data.Stats))
	for _, s := range data.Stats {
		found[s.Stat.Name] = true
		switch s.Stat.Name {
		case statHP:
			p.Stats.HP = s.BaseStat
		case statAttack:
			p.Stats.Attack = s.BaseStat
		case statDefense:
			p.Stats.Defense = s.BaseStat
		case statSpecialAttack:
			p.Stats.SpecialAttack = s.BaseStat
		case statSpecialDefense:
			p.Stats.SpecialDefense = s.BaseStat
		case statSpeed:
			p.Stats.Speed = s.BaseStat
		}
	}
	for _, name := range requiredStats {
		if !found[name] {
			return nil, errors.Internalf("pokemon %s is missing stat %s", data.Name, name)
		}
	}

	return p, nil
}

func convertDamageRelations(r DamageRelations) pokemon.TypeRelations {
	return pokemon.TypeRelations{
		DoubleDamageTo: resourceNames(r.DoubleDamageTo),
		HalfDamageTo:   resourceNames(r.HalfDamageTo),
		NoDamageTo:     resourceNames(r.NoDamageTo),
	}
}

func resourceNames(resources []NamedResource) []string {
	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}
	return names
}
