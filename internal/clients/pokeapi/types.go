package pokeapi

// NamedResource is PokeAPI's reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonData is the subset of /pokemon/{name} used to build a battle record
type PokemonData struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Height int           `json:"height"`
	Weight int           `json:"weight"`
	Types  []PokemonType `json:"types"`
	Stats  []PokemonStat `json:"stats"`
	Moves  []PokemonMove `json:"moves"`
}

// PokemonType is one entry of a species' type list
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is one entry of a species' stat list
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// PokemonMove references a move a species can learn
type PokemonMove struct {
	Move NamedResource `json:"move"`
}

// MoveData is the subset of /move/{name} used in battle.
// Power is nil for status moves.
type MoveData struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Power       *int          `json:"power"`
	DamageClass NamedResource `json:"damage_class"`
	Type        NamedResource `json:"type"`
}

// TypeData is the subset of /type/{name} used for effectiveness
type TypeData struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// DamageRelations lists the types an attacking type is effective against
type DamageRelations struct {
	DoubleDamageTo []NamedResource `json:"double_damage_to"`
	HalfDamageTo   []NamedResource `json:"half_damage_to"`
	NoDamageTo     []NamedResource `json:"no_damage_to"`
}
