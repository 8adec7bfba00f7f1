package lookup

import (
	"github.com/KirkDiggler/pokedex-cli/internal/entities"
)

// Strategy selects how a random creature is chosen
type Strategy string

const (
	// StrategyIndex picks a uniform id in [1, catalog size]
	StrategyIndex Strategy = "index"
	// StrategyCatalog picks uniformly from a fixed-size catalog page
	StrategyCatalog Strategy = "catalog"
)

// Strategies lists the accepted strategy names
func Strategies() []string {
	return []string{string(StrategyIndex), string(StrategyCatalog)}
}

// FetchCreatureInput defines the request for fetching one creature record
type FetchCreatureInput struct {
	Identifier string // name or positive numeric id, case-insensitive
}

// FetchCreatureOutput defines the response for fetching one creature record
type FetchCreatureOutput struct {
	Creature *entities.Creature
}

// ResolveEvolutionInput defines the request for resolving a creature's evolution chain
type ResolveEvolutionInput struct {
	Creature *entities.Creature
}

// ResolveEvolutionOutput defines the response for resolving an evolution chain
type ResolveEvolutionOutput struct {
	Root     *entities.EvolutionNode
	Sequence entities.EvolutionSequence
	// Path runs from the chain root to the requested creature
	Path []string
}

// FetchByTypeInput defines the request for listing creatures of a type
type FetchByTypeInput struct {
	TypeName string
}

// FetchByTypeOutput defines the response for listing creatures of a type
type FetchByTypeOutput struct {
	Listing entities.TypeListing
}

// RandomCreatureInput defines the request for a random creature
type RandomCreatureInput struct {
	Strategy Strategy // defaults to the configured strategy
}

// RandomCreatureOutput defines the response for a random creature
type RandomCreatureOutput struct {
	Creature *entities.Creature
	Strategy Strategy
	// Pick is the rolled position in [1, PoolSize]
	Pick     int
	PoolSize int
	// UsedFallback is set when the catalog size could not be fetched
	UsedFallback bool
}

// LookupInput defines a full lookup request
type LookupInput struct {
	Identifier string
	Random     bool
	Strategy   Strategy
}

// LookupOutput defines the response for a full lookup.
// A failed evolution resolution does not fail the lookup.
type LookupOutput struct {
	LookupID     string
	// RecordKey is the fetched record's "<type>/<id>" key, e.g. "pokemon/25"
	RecordKey    string
	Creature     *entities.Creature
	Evolution    *ResolveEvolutionOutput
	EvolutionErr error
}
