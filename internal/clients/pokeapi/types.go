package pokeapi

// NamedResource is the {name, url} reference PokeAPI embeds everywhere
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is an unnamed {url} reference
type APIResource struct {
	URL string `json:"url"`
}

// Pokemon is the /pokemon/{id or name} resource
type Pokemon struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Types   []PokemonType  `json:"types"`
	Stats   []PokemonStat  `json:"stats"`
	Sprites Sprites        `json:"sprites"`
	Species *NamedResource `json:"species"`
}

// PokemonType is one type slot of a pokemon
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is one base stat of a pokemon
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds sprite URLs; any of them may be null upstream
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// Species is the /pokemon-species resource, trimmed to what bridges to the chain
type Species struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	EvolutionChain *APIResource `json:"evolution_chain"`
}

// EvolutionChain is the /evolution-chain resource
type EvolutionChain struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one node of the nested evolution tree
type ChainLink struct {
	IsBaby    bool           `json:"is_baby"`
	Species   *NamedResource `json:"species"`
	EvolvesTo []*ChainLink   `json:"evolves_to"`
}

// Type is the /type/{name} resource
type Type struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []TypePokemon `json:"pokemon"`
}

// TypePokemon is one member of a type collection
type TypePokemon struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// NamedResourceList is a paginated catalog listing
type NamedResourceList struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}
