// Package lookup implements the creature lookup pipeline: record fetch,
// evolution resolution, type filtering and random selection.
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-cli/internal/entities"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/evolution"
	"github.com/KirkDiggler/pokedex-cli/internal/pkg/idgen"
)

const (
	// DefaultFallbackCount is used when the catalog size cannot be fetched
	DefaultFallbackCount = 1010
	// DefaultCatalogLimit is the page size sampled by the catalog strategy
	DefaultCatalogLimit = 151
)

// Service defines the lookup operations
type Service interface {
	FetchCreature(ctx context.Context, input *FetchCreatureInput) (*FetchCreatureOutput, error)
	ResolveEvolution(ctx context.Context, input *ResolveEvolutionInput) (*ResolveEvolutionOutput, error)
	// FetchByType returns an empty listing alongside any error
	FetchByType(ctx context.Context, input *FetchByTypeInput) (*FetchByTypeOutput, error)
	RandomCreature(ctx context.Context, input *RandomCreatureInput) (*RandomCreatureOutput, error)

	// Lookup runs the record fetch and then the evolution resolution
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	Client      pokeapi.Client
	Roller      dice.Roller     // defaults to dice.DefaultRoller
	IDGenerator idgen.Generator // defaults to UUIDs

	Strategy      Strategy // defaults to StrategyIndex
	FallbackCount int
	CatalogLimit  int
}

// Validate ensures all required dependencies are provided and fills defaults
func (c *Config) Validate() error {
	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("lookup")
	}
	if c.Strategy == "" {
		c.Strategy = StrategyIndex
	}
	if c.FallbackCount == 0 {
		c.FallbackCount = DefaultFallbackCount
	}
	if c.CatalogLimit == 0 {
		c.CatalogLimit = DefaultCatalogLimit
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateEnum("Strategy", string(c.Strategy), Strategies(), vb)
	if c.FallbackCount < 0 {
		vb.InvalidField("FallbackCount", "must be positive")
	}
	if c.CatalogLimit < 0 {
		vb.InvalidField("CatalogLimit", "must be positive")
	}

	return vb.Build()
}

type orchestrator struct {
	client        pokeapi.Client
	roller        dice.Roller
	idGen         idgen.Generator
	strategy      Strategy
	fallbackCount int
	catalogLimit  int
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:        cfg.Client,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		strategy:      cfg.Strategy,
		fallbackCount: cfg.FallbackCount,
		catalogLimit:  cfg.CatalogLimit,
	}, nil
}

// NormalizeIdentifier trims and lower-cases a lookup key. Numeric keys must be
// positive.
func NormalizeIdentifier(raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" {
		return "", errors.InvalidArgument("identifier is required")
	}

	if n, err := strconv.Atoi(id); err == nil {
		if n <= 0 {
			return "", errors.InvalidArgumentf("identifier must be a positive id, got %d", n)
		}
		// "025" and "25" are the same record
		return strconv.Itoa(n), nil
	}
	if strings.HasPrefix(id, "-") {
		return "", errors.InvalidArgumentf("identifier must be a positive id, got %s", id)
	}

	return id, nil
}

// FetchCreature fetches and converts one creature record
func (o *orchestrator) FetchCreature(ctx context.Context, input *FetchCreatureInput) (*FetchCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id, err := NormalizeIdentifier(input.Identifier)
	if err != nil {
		return nil, err
	}

	p, err := o.client.GetPokemon(ctx, id)
	if err != nil {
		slog.InfoContext(ctx, "Failed to fetch creature",
			"identifier", id,
			"code", errors.GetCode(err),
			"error", err,
		)
		return nil, err
	}

	creature, err := pokeapi.ToCreature(p)
	if err != nil {
		slog.InfoContext(ctx, "Creature record is malformed",
			"identifier", id,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to read pokemon %s", id)
	}

	slog.DebugContext(ctx, "Creature fetched",
		"identifier", id,
		"id", creature.ID,
		"name", creature.Name,
	)

	return &FetchCreatureOutput{Creature: creature}, nil
}

// ResolveEvolution follows the creature's species to its evolution chain and
// linearizes it
func (o *orchestrator) ResolveEvolution(ctx context.Context, input *ResolveEvolutionInput) (*ResolveEvolutionOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	creature := input.Creature

	species, err := o.client.GetSpecies(ctx, creature.SpeciesURL)
	if err != nil {
		slog.InfoContext(ctx, "Failed to fetch species",
			"creature", creature.Slug,
			"url", creature.SpeciesURL,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to resolve evolution for %s", creature.Slug)
	}

	if species.EvolutionChain == nil || species.EvolutionChain.URL == "" {
		slog.InfoContext(ctx, "Species has no evolution chain", "creature", creature.Slug)
		return nil, errors.NotFoundf("no evolution chain for %s", creature.Slug)
	}

	chain, err := o.client.GetEvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		slog.InfoContext(ctx, "Failed to fetch evolution chain",
			"creature", creature.Slug,
			"url", species.EvolutionChain.URL,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to resolve evolution for %s", creature.Slug)
	}

	root, err := pokeapi.ToEvolutionTree(chain)
	if err != nil {
		slog.InfoContext(ctx, "Evolution chain is malformed",
			"creature", creature.Slug,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to resolve evolution for %s", creature.Slug)
	}

	return &ResolveEvolutionOutput{
		Root:     root,
		Sequence: evolution.Linearize(root),
		Path:     evolution.Path(root, creature.Slug),
	}, nil
}

// FetchByType lists the first entities.MaxTypeListing creatures of a type
func (o *orchestrator) FetchByType(ctx context.Context, input *FetchByTypeInput) (*FetchByTypeOutput, error) {
	if input == nil {
		return &FetchByTypeOutput{}, errors.InvalidArgument("input is required")
	}

	typeName := strings.ToLower(strings.TrimSpace(input.TypeName))
	empty := &FetchByTypeOutput{Listing: entities.TypeListing{Type: typeName, Names: []string{}}}
	if typeName == "" {
		return empty, errors.InvalidArgument("type name is required")
	}

	t, err := o.client.GetType(ctx, typeName)
	if err != nil {
		slog.InfoContext(ctx, "Failed to fetch type",
			"type", typeName,
			"code", errors.GetCode(err),
			"error", err,
		)
		return empty, err
	}

	listing, err := pokeapi.ToTypeListing(t, entities.MaxTypeListing)
	if err != nil {
		slog.InfoContext(ctx, "Type listing is malformed", "type", typeName, "error", err)
		return empty, errors.Wrapf(err, "failed to read type %s", typeName)
	}

	return &FetchByTypeOutput{Listing: listing}, nil
}

// RandomCreature picks a creature with the requested strategy and fetches it
func (o *orchestrator) RandomCreature(ctx context.Context, input *RandomCreatureInput) (*RandomCreatureOutput, error) {
	strategy := o.strategy
	if input != nil && input.Strategy != "" {
		strategy = input.Strategy
	}

	switch strategy {
	case StrategyIndex:
		return o.randomByIndex(ctx)
	case StrategyCatalog:
		return o.randomFromCatalog(ctx)
	default:
		return nil, errors.InvalidArgumentf("unsupported random strategy: %s", strategy)
	}
}

func (o *orchestrator) randomByIndex(ctx context.Context) (*RandomCreatureOutput, error) {
	total, usedFallback := o.catalogSize(ctx)

	pick, err := o.roll(total)
	if err != nil {
		return nil, err
	}

	fetched, err := o.FetchCreature(ctx, &FetchCreatureInput{Identifier: strconv.Itoa(pick)})
	if err != nil {
		return nil, err
	}

	return &RandomCreatureOutput{
		Creature:     fetched.Creature,
		Strategy:     StrategyIndex,
		Pick:         pick,
		PoolSize:     total,
		UsedFallback: usedFallback,
	}, nil
}

// catalogSize asks upstream for the total count. Falling back to the
// configured count keeps random lookups working when the listing is down.
func (o *orchestrator) catalogSize(ctx context.Context) (int, bool) {
	list, err := o.client.ListPokemon(ctx, 1)
	if err == nil && list.Count > 0 {
		return list.Count, false
	}

	if err == nil {
		err = errors.MalformedData("catalog count is not positive")
	}
	slog.WarnContext(ctx, "Could not fetch catalog size, using fallback",
		"fallback", o.fallbackCount,
		"error", err,
	)
	return o.fallbackCount, true
}

func (o *orchestrator) randomFromCatalog(ctx context.Context) (*RandomCreatureOutput, error) {
	list, err := o.client.ListPokemon(ctx, o.catalogLimit)
	if err != nil {
		slog.InfoContext(ctx, "Failed to fetch catalog", "limit", o.catalogLimit, "error", err)
		return nil, errors.Wrap(err, "failed to pick random pokemon")
	}
	if len(list.Results) == 0 {
		return nil, errors.NotFound("catalog is empty")
	}

	pick, err := o.roll(len(list.Results))
	if err != nil {
		return nil, err
	}

	fetched, err := o.FetchCreature(ctx, &FetchCreatureInput{Identifier: list.Results[pick-1].Name})
	if err != nil {
		return nil, err
	}

	return &RandomCreatureOutput{
		Creature: fetched.Creature,
		Strategy: StrategyCatalog,
		Pick:     pick,
		PoolSize: len(list.Results),
	}, nil
}

// roll returns a value in [1, size]
func (o *orchestrator) roll(size int) (int, error) {
	pick, err := o.roller.Roll(size)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll random pick")
	}
	if pick < 1 || pick > size {
		return 0, errors.Internalf("roll %d out of range [1,%d]", pick, size)
	}
	return pick, nil
}

// Lookup fetches a record by identifier or at random, then resolves its
// evolution chain. Only the record fetch can fail the lookup.
func (o *orchestrator) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lookupID := o.idGen.Generate()
	logger := slog.With("lookup_id", lookupID)

	var creature *entities.Creature
	if input.Random {
		out, err := o.RandomCreature(ctx, &RandomCreatureInput{Strategy: input.Strategy})
		if err != nil {
			logger.InfoContext(ctx, "Random lookup failed", "error", err)
			return nil, err
		}
		logger.InfoContext(ctx, "Random creature picked",
			"strategy", out.Strategy,
			"pick", out.Pick,
			"pool_size", out.PoolSize,
		)
		creature = out.Creature
	} else {
		out, err := o.FetchCreature(ctx, &FetchCreatureInput{Identifier: input.Identifier})
		if err != nil {
			logger.InfoContext(ctx, "Lookup failed", "identifier", input.Identifier, "error", err)
			return nil, err
		}
		creature = out.Creature
	}

	output := &LookupOutput{
		LookupID:  lookupID,
		RecordKey: entities.RecordKey(creature),
		Creature:  creature,
	}
	logger = logger.With("record", output.RecordKey)

	evo, err := o.ResolveEvolution(ctx, &ResolveEvolutionInput{Creature: creature})
	if err != nil {
		logger.InfoContext(ctx, "Evolution unavailable", "error", err)
		output.EvolutionErr = err
		return output, nil
	}
	output.Evolution = evo

	logger.InfoContext(ctx, "Lookup complete",
		"chain_length", len(evo.Sequence),
	)
	return output, nil
}
